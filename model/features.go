package model

// FeatureRecord is the fixed six-field input the classifier was trained on.
// Only Amount and AmountRatio vary per request; the rest are constants the
// training pipeline baked in.
type FeatureRecord struct {
	Step           float64
	Amount         float64
	IsFlaggedFraud float64
	IsMerchant     float64
	AmountRatio    float64
	TypeEncoded    float64
}

// minAmountRatio replaces the ratio for non-positive amounts so the
// vector never carries Inf or NaN.
const minAmountRatio = 0.00001

// NewFeatureRecord builds the record for one transaction amount.
func NewFeatureRecord(amount float64) FeatureRecord {
	ratio := minAmountRatio
	if amount > 0 {
		ratio = amount / 100000
	}
	return FeatureRecord{
		Step:           1,
		Amount:         amount,
		IsFlaggedFraud: 0,
		IsMerchant:     1,
		AmountRatio:    ratio,
		TypeEncoded:    2,
	}
}

// Vector emits the fields in artifact order.
func (r FeatureRecord) Vector() []float64 {
	return []float64{
		r.Step,
		r.Amount,
		r.IsFlaggedFraud,
		r.IsMerchant,
		r.AmountRatio,
		r.TypeEncoded,
	}
}

// FeatureNames returns the column names in vector order.
func FeatureNames() []string {
	return []string{
		"step",
		"amount",
		"isFlaggedFraud",
		"isMerchant",
		"amount_ratio",
		"type_encoded",
	}
}
