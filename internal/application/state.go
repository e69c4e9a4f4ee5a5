package application

import "github.com/bnema/wave-portal-cli/internal/domain"

type State struct {
	Account string
	Waves   []domain.Wave
	Sending bool
	Draft   string
}

func (s State) Connected() bool {
	return s.Account != ""
}

func (s State) SendState() domain.SendState {
	return domain.SendStateFor(s.Sending)
}
