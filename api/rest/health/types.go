package health

// StatusOK is the only status the liveness probe reports
const StatusOK = "ok"

// Response represents the health check response
type Response struct {
	Status string `json:"status" example:"ok"`
}
