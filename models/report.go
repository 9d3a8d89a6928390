package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status is the lifecycle state of a report. It is forced to
// StatusPending at creation; any later transition is written out of
// band by an administrative process, never by this service.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusResolved   Status = "resolved"
)

// Report is a single citizen-submitted issue, stored in the
// "submissions" collection. Coords is [longitude, latitude].
type Report struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Text      string             `bson:"text" json:"text"`
	Coords    [2]float64         `bson:"coords" json:"coords"`
	Photo     string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Status    Status             `bson:"status,omitempty" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`

	// Extra holds fields outside the schema. The collection predates
	// this service and other writers are not required to stick to the
	// struct above, so unknown fields round-trip here untouched.
	Extra bson.M `bson:",inline" json:"-"`
}

// MarshalJSON flattens Extra back into the object so clients see
// stored documents whole, not just the schema fields. Schema fields
// win on key collision.
func (r Report) MarshalJSON() ([]byte, error) {
	type plain Report
	base, err := json.Marshal(plain(r))
	if err != nil {
		return nil, err
	}
	if len(r.Extra) == 0 {
		return base, nil
	}
	var obj map[string]interface{}
	if err := json.Unmarshal(base, &obj); err != nil {
		return nil, err
	}
	for k, v := range r.Extra {
		if _, taken := obj[k]; !taken {
			obj[k] = v
		}
	}
	return json.Marshal(obj)
}
