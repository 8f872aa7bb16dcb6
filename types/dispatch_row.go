package types

import "github.com/helixbio/validate-worker/grpc/proto"

// DispatchRow is one unit of work: three long-form locators to be fetched
// and validated together.
type DispatchRow struct {
	SequencePath  string `json:"sequence_path"`
	LabelPath     string `json:"label_path"`
	ThirdDataPath string `json:"third_data_path"`
}

func DispatchRowFromProto(p *proto.DispatchRow) *DispatchRow {
	return &DispatchRow{
		SequencePath:  p.GetSequencePath(),
		LabelPath:     p.GetLabelPath(),
		ThirdDataPath: p.GetThirdDataPath(),
	}
}

func (r *DispatchRow) ToProto() *proto.DispatchRow {
	return &proto.DispatchRow{
		SequencePath:  r.SequencePath,
		LabelPath:     r.LabelPath,
		ThirdDataPath: r.ThirdDataPath,
	}
}
