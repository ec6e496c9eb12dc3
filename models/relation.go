package models

// RelationStatus is the lifecycle state of a relation as reported by the
// server. Only active relations are eligible for sharing.
type RelationStatus string

const (
	RelationActive  RelationStatus = "active"
	RelationRevoked RelationStatus = "revoked"
)

// RelationRecord is the wire representation of a relation returned by the
// relations endpoint. Loosely structured fields from the server are
// narrowed into this record at the adapter boundary.
type RelationRecord struct {
	// UUID identifies the relation.
	UUID string `json:"uuid"`

	// Status is the lifecycle state used to filter eligible recipients.
	Status RelationStatus `json:"status"`

	// PublicKey is the armored public key of the related workspace.
	// May be empty: such relations are dropped from the recipient set,
	// not treated as an error.
	PublicKey string `json:"public_key"`
}

// ShareableRelation is an eligible recipient for re-encryption. Instances
// are only constructed for relations with a non-empty public key.
type ShareableRelation struct {
	// RelationID identifies the relation the copy is shared with.
	RelationID string `json:"relation_id"`

	// PublicKey is the armored key the shareable copy is encrypted for.
	PublicKey string `json:"public_key"`
}
