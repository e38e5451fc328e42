package model

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type FlagsConfigResponse struct {
	ClientSideID string `json:"clientSideId"`
}
