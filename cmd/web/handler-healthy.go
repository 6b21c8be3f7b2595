package main

import "net/http"

type healthResponse struct {
	Status string `json:"status"`
	Tables int    `json:"tables"`
}

// healthy responds with a JSON object indicating that the server is healthy and how many tables it holds.
func (app *application) healthy(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusOK, healthResponse{
		Status: "ok",
		Tables: app.tables.Len(),
	})
}
