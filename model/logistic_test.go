package model

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLogisticSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")

	saved := &LogisticModel{
		Weights: []float64{0, 0.000004, 0.5, -0.1, 2.5, 0.05},
		Bias:    -3.2,
	}
	if err := saved.Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded := &LogisticModel{}
	if err := loaded.Load(path); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Bias != saved.Bias {
		t.Errorf("bias: got %v want %v", loaded.Bias, saved.Bias)
	}
	for i, w := range saved.Weights {
		if loaded.Weights[i] != w {
			t.Errorf("weight %d: got %v want %v", i, loaded.Weights[i], w)
		}
	}
}

func TestPredictProbaBounds(t *testing.T) {
	clf := &LogisticModel{Weights: []float64{0, 0.000004, 0.5, -0.1, 2.5, 0.05}, Bias: -3.2}

	for _, amount := range []float64{0, 1, 50000, 1e9, -500} {
		proba, err := clf.PredictProba(NewFeatureRecord(amount).Vector())
		if err != nil {
			t.Fatalf("predict failed for %v: %v", amount, err)
		}
		if len(proba) != 2 {
			t.Fatalf("got %d classes, want 2", len(proba))
		}
		if proba[1] < 0 || proba[1] > 1 {
			t.Errorf("fraud probability out of range for %v: %v", amount, proba[1])
		}
		if sum := proba[0] + proba[1]; sum < 0.999999 || sum > 1.000001 {
			t.Errorf("probabilities do not sum to 1 for %v: %v", amount, sum)
		}
	}
}

func TestPredictProbaZeroModel(t *testing.T) {
	clf := &LogisticModel{Weights: make([]float64, 6)}

	proba, err := clf.PredictProba(NewFeatureRecord(100).Vector())
	if err != nil {
		t.Fatalf("predict failed: %v", err)
	}
	if proba[1] != 0.5 {
		t.Errorf("zero model should score 0.5, got %v", proba[1])
	}
}

func TestLoadRejectsWeightMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte(`{"weights":[1,2,3],"bias":0}`), 0o600); err != nil {
		t.Fatal(err)
	}

	clf := &LogisticModel{}
	if err := clf.Load(path); err == nil {
		t.Error("expected error for wrong weight count")
	}
}

func TestLoadRejectsCorruptArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte("not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	clf := &LogisticModel{}
	if err := clf.Load(path); err == nil {
		t.Error("expected error for corrupt artifact")
	}
}

func TestPredictProbaFeatureCountMismatch(t *testing.T) {
	clf := &LogisticModel{Weights: make([]float64, 6)}
	if _, err := clf.PredictProba([]float64{1, 2}); err == nil {
		t.Error("expected error for short feature vector")
	}
}
