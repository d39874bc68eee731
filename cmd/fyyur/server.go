package main

import (
	"net/http"

	"fyyur/internal/app/artists"
	"fyyur/internal/app/shows"
	"fyyur/internal/app/venues"
	"fyyur/internal/config"
	"fyyur/internal/http/middleware"
	"fyyur/internal/httpapi"
	"fyyur/internal/store"
	"fyyur/internal/web"
)

func newHTTPHandler(cfg *config.Config, dataStore *store.Store) (http.Handler, error) {
	pages, err := web.New()
	if err != nil {
		return nil, err
	}

	venueSvc := venues.New(dataStore, nil)
	artistSvc := artists.New(dataStore, nil)
	showSvc := shows.New(dataStore, dataStore, dataStore)

	srv := httpapi.New(venueSvc, artistSvc, showSvc, pages)

	var handler http.Handler = srv.Routes()
	handler = middleware.Recovery(srv.ErrorPage())(handler)
	handler = middleware.CORS(cfg.CORS.AllowedOrigins)(handler)
	handler = middleware.RequestLogging()(handler)

	return handler, nil
}
