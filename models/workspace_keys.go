package models

// WorkspaceKeyPair holds the armored key material of one workspace.
// Owned exclusively by the key registry: the private key is normalized
// (armor header/blank-line repair) before storage, and public and private
// keys of the same record may be set independently.
type WorkspaceKeyPair struct {
	// WorkspaceID is the owner of the key pair.
	WorkspaceID string `json:"workspace_id"`

	// PublicKey is the armored public key, empty if not set.
	PublicKey string `json:"public_key,omitempty"`

	// PrivateKey is the armored private key, empty if not set.
	// Never transmitted to the server.
	PrivateKey string `json:"-"`
}

// HasPublic reports whether a public key has been registered.
func (p WorkspaceKeyPair) HasPublic() bool { return p.PublicKey != "" }

// HasPrivate reports whether a private key has been registered.
func (p WorkspaceKeyPair) HasPrivate() bool { return p.PrivateKey != "" }
