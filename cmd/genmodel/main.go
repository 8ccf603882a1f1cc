// Command genmodel writes a baseline classifier artifact so the service can
// run locally before the training pipeline has delivered a real one.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"fraudapi/model"
)

func main() {
	modelPath := flag.String("model_path", "./fraud_model.json", "artifact output path")
	flag.Parse()

	// Weights in feature-vector order: step, amount, isFlaggedFraud,
	// isMerchant, amount_ratio, type_encoded. The amount terms dominate so
	// larger transactions score as riskier.
	baseline := &model.LogisticModel{
		Weights: []float64{0, 0.000004, 0.5, -0.1, 2.5, 0.05},
		Bias:    -3.2,
	}

	if dir := filepath.Dir(*modelPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("failed to create model dir: %v", err)
		}
	}
	if err := baseline.Save(*modelPath); err != nil {
		log.Fatalf("failed to save model: %v", err)
	}

	fmt.Printf("model saved to %s\n", *modelPath)
}
