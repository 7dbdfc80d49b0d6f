package request

import (
	"testing"

	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/domain/entities"
)

func TestProposalCreateRequest_ToItems(t *testing.T) {
	r := ProposalCreateRequest{
		Items: []LineItemRequest{
			{Name: "Forestry mulching", Quantity: 2.5, Rate: 2500},
			{Name: "Debris haul-off", Quantity: 1, Rate: 450, Total: 400},
		},
	}

	items := r.ToItems()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Total != 6250 {
		t.Fatalf("expected defaulted total 6250, got %v", items[0].Total)
	}
	if items[1].Total != 400 {
		t.Fatalf("explicit total must win, got %v", items[1].Total)
	}
}

func TestProposalCreateRequest_ToInputs(t *testing.T) {
	r := ProposalCreateRequest{
		Inputs: ProposalInputsRequest{
			Acreage:   2.5,
			Service:   "mulching",
			Address:   "123 Pine Rd",
			Obstacles: []string{"pond"},
		},
	}

	inputs := r.ToInputs()
	if inputs.Service != entities.ServiceMulching || inputs.Acreage != 2.5 {
		t.Fatalf("unexpected inputs: %+v", inputs)
	}
	if len(inputs.Obstacles) != 1 || inputs.Obstacles[0] != "pond" {
		t.Fatalf("unexpected obstacles: %+v", inputs.Obstacles)
	}
}
