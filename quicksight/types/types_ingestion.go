package types

import (
	"fmt"
)

// ErrorInfo describes why an ingestion failed.
type ErrorInfo struct {
	Type    IngestionErrorType `json:"Type,omitempty"`
	Message *string            `json:"Message,omitempty"`
}

type RowInfo struct {
	RowsIngested *int64 `json:"RowsIngested,omitempty"`
	RowsDropped  *int64 `json:"RowsDropped,omitempty"`
}

// QueueInfo names the ingestion a queued ingestion is waiting on.
type QueueInfo struct {
	WaitingOnIngestion *string `json:"WaitingOnIngestion,omitempty"`
	QueuedIngestion    *string `json:"QueuedIngestion,omitempty"`
}

// Ingestion is one SPICE ingestion of a data set.
type Ingestion struct {
	Arn                    *string                `json:"Arn,omitempty"`
	IngestionId            *string                `json:"IngestionId,omitempty"`
	IngestionStatus        IngestionStatus        `json:"IngestionStatus,omitempty"`
	ErrorInfo              *ErrorInfo             `json:"ErrorInfo,omitempty"`
	RowInfo                *RowInfo               `json:"RowInfo,omitempty"`
	QueueInfo              *QueueInfo             `json:"QueueInfo,omitempty"`
	CreatedTime            *Timestamp             `json:"CreatedTime,omitempty"`
	IngestionTimeInSeconds *int64                 `json:"IngestionTimeInSeconds,omitempty"`
	IngestionSizeInBytes   *int64                 `json:"IngestionSizeInBytes,omitempty"`
	RequestSource          IngestionRequestSource `json:"RequestSource,omitempty"`
	RequestType            IngestionRequestType   `json:"RequestType,omitempty"`
}

// Err returns an *IngestionFailedError when the ingestion has failed and nil
// otherwise.
func (v *Ingestion) Err() error {
	if v == nil || v.IngestionStatus != IngestionStatusFailed {
		return nil
	}
	e := &IngestionFailedError{IngestionId: derefString(v.IngestionId)}
	if v.ErrorInfo != nil {
		e.Type = v.ErrorInfo.Type
		e.Message = derefString(v.ErrorInfo.Message)
	}
	return e
}

// IngestionFailedError reports a failed ingestion and its error kind.
type IngestionFailedError struct {
	IngestionId string
	Type        IngestionErrorType
	Message     string
}

func (e *IngestionFailedError) Error() string {
	kind := string(e.Type)
	if kind == "" {
		kind = "unknown error"
	}
	if e.Message == "" {
		return fmt.Sprintf("ingestion %s failed: %s", e.IngestionId, kind)
	}
	return fmt.Sprintf("ingestion %s failed: %s: %s", e.IngestionId, kind, e.Message)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
