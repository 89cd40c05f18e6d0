package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// Единый конверт ответа: {status, data} | {status, errors} | {status, message}

type dataResponse struct {
	Status bool        `json:"status"`
	Data   interface{} `json:"data"`
}

type errorResponse struct {
	Status bool        `json:"status"`
	Errors interface{} `json:"errors"`
}

type messageResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Ошибка записи ответа: %v", err)
	}
}

func respondData(w http.ResponseWriter, code int, data interface{}) {
	writeJSON(w, code, dataResponse{Status: true, Data: data})
}

func respondErrors(w http.ResponseWriter, code int, errs interface{}) {
	writeJSON(w, code, errorResponse{Status: false, Errors: errs})
}

func respondMessage(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, messageResponse{Status: false, Message: message})
}
