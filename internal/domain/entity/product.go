package entity

import "time"

// Product is a catalogue entry owned by the account that created it.
// Only the owning account may mutate a product after creation.
type Product struct {
	ID          ID        // Typed product identifier, generated at creation.
	Name        string    // Display name; unique across all products.
	Description string    // Free-form description.
	OwnerID     ID        // Account identifier recorded at creation. May be empty for anonymous creations.
	CreatedAt   time.Time // Timestamp of when this product was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
