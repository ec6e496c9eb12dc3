package models

// FileDescriptor is an opaque reference to encrypted bytes stored remotely.
// The binary payload is fetched and decrypted on demand and is never cached
// inside the domain model.
type FileDescriptor struct {
	// FileID is the remote identifier of the encrypted blob.
	FileID string `json:"file_id"`

	// FileName is the original name of the file, kept for presentation.
	FileName string `json:"file_name"`

	// FileMimetype is the declared media type of the plaintext bytes.
	FileMimetype string `json:"file_mimetype"`
}

// PendingFile is the plaintext replacement value of a file-format entry
// awaiting persistence: the raw bytes plus the metadata of the descriptor
// the upload will produce. Never serialized to the wire.
type PendingFile struct {
	// FileName is the name the uploaded file will carry.
	FileName string

	// FileMimetype is the media type of Data.
	FileMimetype string

	// Data holds the plaintext bytes to encrypt and upload.
	Data []byte
}
