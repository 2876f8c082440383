package dto

type LivenessResponse struct {
	Mood string `json:"mood"`
}
