// ================== internal/features/items/model.go ==================
package items

import "time"

// LostItem is one reported find. ImageURL, Description and Location are
// filled in one at a time as the reporting flow advances; the store
// itself does not care about the order.
type LostItem struct {
	ID          string    `bson:"_id" json:"id" example:"7cfb7a9e-9c37-4a6b-9d3e-2f1a44c9a1b0"`
	ReporterID  string    `bson:"reporterId" json:"reporterId" example:"U4af4980629..."`
	ImageURL    string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty" example:"https://res.cloudinary.com/demo/foundbot/images/abc.jpg"`
	Description string    `bson:"description,omitempty" json:"description,omitempty" example:"藍色皮夾"`
	Location    string    `bson:"location,omitempty" json:"location,omitempty" example:"25.1,121.5"`
	ReportDate  time.Time `bson:"reportDate" json:"reportDate" example:"2023-01-01T00:00:00Z"`
	Resolved    bool      `bson:"resolved" json:"resolved" example:"false"`
}
