package domain

type Player struct {
	Name  string `json:"name"`
	Token Token  `json:"token"`
}

const (
	DefaultPlayerOneName = "Player One"
	DefaultPlayerTwoName = "Player Two"
)
