package model

type LoadingState string

const (
	StateIdle    LoadingState = "IDLE"
	StateLoading LoadingState = "LOADING"
	StateSuccess LoadingState = "SUCCESS"
	StateError   LoadingState = "ERROR"
)
