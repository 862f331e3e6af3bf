// internal/domain/models/metric.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Metric is a KPI definition for a future impact dashboard.
// Collection: "metric". No endpoint references it yet.
type Metric struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Key    string             `bson:"key" json:"key"`
	Label  string             `bson:"label" json:"label"`
	Value  float64            `bson:"value" json:"value"`
	Unit   string             `bson:"unit,omitempty" json:"unit,omitempty"`
	Period string             `bson:"period,omitempty" json:"period,omitempty"`
}

func (m *Metric) Validate() *ValidationError {
	if m.Key == "" {
		return required("key")
	}
	if m.Label == "" {
		return required("label")
	}
	return nil
}
