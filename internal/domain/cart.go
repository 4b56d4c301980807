package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartSchemaVersion is bumped whenever the persisted cart shape changes.
// Version 0 documents predate the per-line stock ceiling.
const CartSchemaVersion = 1

type CartLine struct {
	ItemID   string  `bson:"item_id" json:"item_id"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	ImageURL string  `bson:"image_url" json:"image_url"`
	Category string  `bson:"category" json:"category"`
	Quantity int     `bson:"quantity" json:"quantity"`
	// Ceiling is the stock quantity recorded when the item entered the
	// cart. It is a snapshot, not a live stock read.
	Ceiling int `bson:"ceiling" json:"ceiling"`
}

type Cart struct {
	ID            string     `bson:"_id" json:"id"`
	SchemaVersion int        `bson:"schema_version" json:"-"`
	Lines         []CartLine `bson:"lines" json:"lines"`
	UpdatedAt     time.Time  `bson:"updated_at" json:"updated_at"`
}

func (c *Cart) Line(itemID string) *CartLine {
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			return &c.Lines[i]
		}
	}
	return nil
}

func (c *Cart) RemoveLine(itemID string) {
	lines := c.Lines[:0]
	for _, line := range c.Lines {
		if line.ItemID != itemID {
			lines = append(lines, line)
		}
	}
	c.Lines = lines
}

func (c *Cart) Count() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// Total is the exact sum of price x quantity over all lines. Arithmetic
// goes through decimal so repeated mutations never accumulate drift.
func (c *Cart) Total() float64 {
	total := decimal.Zero
	for _, line := range c.Lines {
		sub := decimal.NewFromFloat(line.Price).Mul(decimal.NewFromInt(int64(line.Quantity)))
		total = total.Add(sub)
	}
	f, _ := total.Float64()
	return f
}

// Normalize migrates a loaded snapshot to the current schema and enforces
// the line invariant 0 < quantity <= ceiling. Version 0 snapshots carried
// no ceiling; the line quantity doubled as the stock snapshot there, so
// missing ceilings default to the quantity.
func (c *Cart) Normalize() {
	lines := c.Lines[:0]
	for _, line := range c.Lines {
		if line.Quantity <= 0 {
			continue
		}
		if c.SchemaVersion < CartSchemaVersion && line.Ceiling == 0 {
			line.Ceiling = line.Quantity
		}
		if line.Ceiling < line.Quantity {
			line.Quantity = line.Ceiling
		}
		if line.Quantity <= 0 {
			continue
		}
		lines = append(lines, line)
	}
	c.Lines = lines
	c.SchemaVersion = CartSchemaVersion
}
