package dto

type CreateSalleRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type UpdateSalleRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}
