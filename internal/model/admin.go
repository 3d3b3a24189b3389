package model

type Admin struct {
	Username string `json:"username"`
}
