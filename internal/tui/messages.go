package tui

import "github.com/jander15/BathroomPass-sub000/models"

// NavigateTo switches the active page of [RootModel].
type NavigateTo struct {
	Page string
}

// LoginResult finishes the sign-in attempt started by [LoginModel].
type LoginResult struct {
	Session models.Session
	Err     error
}

type actionDoneMsg struct {
	action string
	resp   models.Response
	err    error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

type tickMsg struct{}
