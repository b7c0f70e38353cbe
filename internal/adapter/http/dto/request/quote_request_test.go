package request

import "testing"

func TestQuoteRequest_ResolveCommand(t *testing.T) {
	weight := 7.5
	r := QuoteRequest{
		CommerceID:          " com-1 ",
		OriginBranchID:      " b-1 ",
		DestinationBranchID: "b-2",
		TransportTariffID:   " t-1 ",
		ServiceIDs:          []string{"svc-1"},
		WeightKG:            &weight,
	}

	cmd := r.ResolveCommand()
	if cmd.CommerceID != "com-1" || cmd.OriginBranchID != "b-1" || cmd.DestinationBranchID != "b-2" || cmd.TransportTariffID != "t-1" {
		t.Fatalf("expected trimmed ids, got %+v", cmd)
	}
	if len(cmd.ServiceIDs) != 1 || cmd.ServiceIDs[0] != "svc-1" {
		t.Fatalf("unexpected service ids: %v", cmd.ServiceIDs)
	}
	if cmd.WeightKG == nil || *cmd.WeightKG != 7.5 {
		t.Fatalf("unexpected weight: %v", cmd.WeightKG)
	}

	r2 := QuoteRequest{OriginBranchID: "b-1", DestinationBranchID: "b-2", TransportTariffID: "t-1"}
	cmd2 := r2.ResolveCommand()
	if cmd2.CommerceID != "" || cmd2.WeightKG != nil {
		t.Fatalf("expected empty optionals, got %+v", cmd2)
	}
}
