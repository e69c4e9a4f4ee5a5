package domain

type SendState string

const (
	SendStateIdle    SendState = "idle"
	SendStateSending SendState = "sending"
)

func SendStateFor(sending bool) SendState {
	if sending {
		return SendStateSending
	}

	return SendStateIdle
}
