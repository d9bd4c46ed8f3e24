package dto

type RSVPRequestDTO struct {
	Status string `json:"status"`
}
