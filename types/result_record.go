package types

import "github.com/helixbio/validate-worker/grpc/proto"

const (
	StatusPass = "pass"
	StatusFail = "fail"
)

// ResultRecord is the outcome of processing one dispatch row. Exactly one
// record is produced per input row, in input order. Status is StatusPass
// iff ExitCode is zero; the constructors maintain that invariant.
type ResultRecord struct {
	// SequencePath echoes the row's sequence locator
	SequencePath string `json:"sequence_path"`
	Status       string `json:"status"`
	// ExitCode is the validator's real exit code on normal completion, or
	// -1 for any non-process-completion failure
	ExitCode int    `json:"exit_code"`
	Message  string `json:"message"`
}

// NewPassRecord returns a pass record. Message carries the validator's
// trimmed standard output.
func NewPassRecord(sequencePath, message string) *ResultRecord {
	return &ResultRecord{
		SequencePath: sequencePath,
		Status:       StatusPass,
		ExitCode:     0,
		Message:      message,
	}
}

// NewFailRecord returns a fail record. A zero exit code cannot describe a
// failure, so it is coerced to -1.
func NewFailRecord(sequencePath string, exitCode int, message string) *ResultRecord {
	if exitCode == 0 {
		exitCode = -1
	}
	return &ResultRecord{
		SequencePath: sequencePath,
		Status:       StatusFail,
		ExitCode:     exitCode,
		Message:      message,
	}
}

func ResultRecordFromProto(p *proto.ResultRecord) *ResultRecord {
	return &ResultRecord{
		SequencePath: p.GetSequencePath(),
		Status:       p.GetStatus(),
		ExitCode:     int(p.GetExitCode()),
		Message:      p.GetMessage(),
	}
}

func (r *ResultRecord) ToProto() *proto.ResultRecord {
	return &proto.ResultRecord{
		SequencePath: r.SequencePath,
		Status:       r.Status,
		ExitCode:     int32(r.ExitCode),
		Message:      r.Message,
	}
}
