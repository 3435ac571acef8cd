package httpapi

import "wikiquiz/internal/quizgen"

type API struct {
	service *quizgen.Service
}

func NewAPI(service *quizgen.Service) *API {
	return &API{service: service}
}
