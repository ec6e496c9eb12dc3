package models

import "time"

// AnswerContentFilter holds the query parameters accepted by the
// answer-content read endpoint. Zero values are omitted from the query.
type AnswerContentFilter struct {
	// AnswerPoolUUID restricts results to one vault (answer pool).
	AnswerPoolUUID string

	// InPushFormUUID restricts results to entries grouped under one
	// push form.
	InPushFormUUID string

	// AnswerPoolStatus filters by pool lifecycle state, e.g. "active".
	AnswerPoolStatus string

	// HasMissingShareable, when set, selects only items that still lack
	// a re-encrypted shareable copy.
	HasMissingShareable *bool

	// IsLatest, when set, selects only the latest version of each item.
	IsLatest *bool

	// Limit is the page size. The server default applies when zero.
	Limit int
}

// ContentEntryRecord is the wire form of one answer content entry.
type ContentEntryRecord struct {
	UUID            string          `json:"uuid"`
	ContentFormat   ContentFormat   `json:"content_format"`
	ContentHash     string          `json:"content_hash"`
	ContentIsPadded bool            `json:"content_is_padded"`
	Content         string          `json:"content,omitempty"`
	File            *FileDescriptor `json:"file,omitempty"`
	ExpirationDate  *time.Time      `json:"expiration_date,omitempty"`
}

// ContentItemRecord is the wire form of one content item with its entries.
type ContentItemRecord struct {
	ItemUUID string               `json:"item_uuid"`
	Entries  []ContentEntryRecord `json:"entries"`
}

// AnswerContentRecord is the wire form of one answer with its content,
// as returned by the answer-content read endpoint and accepted by the
// answer-content write endpoint.
type AnswerContentRecord struct {
	UUID              string              `json:"uuid"`
	SourceUUID        string              `json:"source_uuid"`
	AnswerPoolUUID    string              `json:"answer_pool_uuid"`
	ItemUUID          string              `json:"item_uuid"`
	Version           int                 `json:"version"`
	Content           []ContentItemRecord `json:"content"`
	MinExpirationDate *time.Time          `json:"min_expiration_date,omitempty"`
}

// AnswerContentPage is one page of the answer-content list response.
type AnswerContentPage struct {
	// Count is the total number of records matching the filter on the
	// server, not the number of records in Results.
	Count int `json:"count"`

	// Results holds at most the requested page size of records.
	Results []AnswerContentRecord `json:"results"`
}

// ShareablePayload is the body of the update-shareable-answer-content
// action: the rebuilt content of one item, re-encrypted for every
// eligible relation.
type ShareablePayload struct {
	// RelationIDs lists the relations the content is encrypted for.
	RelationIDs []string `json:"relation_ids"`

	// Content holds the re-encrypted entries of the item.
	Content []ContentEntryRecord `json:"content"`
}

// UploadFileResponse is returned by the file upload action and carries
// the descriptor of the newly stored encrypted blob.
type UploadFileResponse struct {
	File FileDescriptor `json:"file"`
}
