package http

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"time"

	"fraudapi/db"
	"fraudapi/model"

	"go.uber.org/zap"
)

// Scorer is the prediction dependency of the API.
type Scorer interface {
	Score(rec model.FeatureRecord) (float64, error)
}

// API holds the handler dependencies: the model holder, the audit log store
// and a logger. Constructed once at startup and shared by all requests.
type API struct {
	scorer Scorer
	store  *db.Store
	logger *zap.Logger
}

func NewAPI(scorer Scorer, store *db.Store, logger *zap.Logger) *API {
	return &API{scorer: scorer, store: store, logger: logger}
}

// Register wires the API routes onto the mux.
func (a *API) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", a.handleRoot)
	mux.HandleFunc("POST /predict", a.handlePredict)
	mux.HandleFunc("POST /predict/{$}", a.handlePredict)
}

// PredictionResult is the success payload of /predict/.
type PredictionResult struct {
	FraudPrediction  int     `json:"fraud_prediction"`
	FraudProbability float64 `json:"fraud_probability"`
}

func (a *API) handleRoot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, map[string]string{"message": "Fraud Detection API v2 is live!"})
}

func (a *API) handlePredict(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Amount is required.")
		return
	}

	raw, ok := payload["amount"]
	if !ok || raw == nil {
		respondError(w, http.StatusBadRequest, "Amount is required.")
		return
	}

	amount, ok := raw.(float64)
	if !ok {
		a.predictError(w, r, errAmountNotNumeric)
		return
	}

	record := model.NewFeatureRecord(amount)
	probability, err := a.scorer.Score(record)
	if err != nil {
		a.predictError(w, r, err)
		return
	}

	prediction := 0
	if probability > 0.5 {
		prediction = 1
	}
	rounded := round6(probability)

	entry := db.LogEntry{
		Timestamp:   time.Now().UTC().Format(time.RFC3339Nano),
		Amount:      amount,
		Prediction:  prediction,
		Probability: rounded,
	}
	if err := a.store.Append(entry); err != nil {
		a.predictError(w, r, err)
		return
	}

	respondJSON(w, PredictionResult{
		FraudPrediction:  prediction,
		FraudProbability: rounded,
	})
}

var errAmountNotNumeric = errors.New("amount must be a number")

// predictError is the single conversion point from internal faults to the
// transport error envelope.
func (a *API) predictError(w http.ResponseWriter, r *http.Request, err error) {
	a.logger.Error("prediction failed",
		zap.String("request_id", GetRequestID(r.Context())),
		zap.Error(err))
	respondError(w, http.StatusInternalServerError, "Prediction error: "+err.Error())
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

func respondJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
