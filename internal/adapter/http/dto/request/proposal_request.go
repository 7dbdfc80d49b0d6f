package request

import "github.com/CVO-TreeAi/treeshop-production-sub002/internal/domain/entities"

type CustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
}

type ProposalInputsRequest struct {
	Acreage   float64  `json:"acreage" binding:"required"`
	Service   string   `json:"service" binding:"required"`
	Package   string   `json:"package"`
	Address   string   `json:"address" binding:"required"`
	Obstacles []string `json:"obstacles"`
}

type LineItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity" binding:"required"`
	Rate        float64 `json:"rate" binding:"required"`
	Total       float64 `json:"total"`
}

// ProposalCreateRequest carries the customer, frozen inputs, and the
// pre-computed breakdown produced by an accepted quote.
type ProposalCreateRequest struct {
	Customer CustomerRequest       `json:"customer" binding:"required"`
	Inputs   ProposalInputsRequest `json:"inputs" binding:"required"`
	Items    []LineItemRequest     `json:"items" binding:"required,min=1,dive"`
}

func (r ProposalCreateRequest) ToCustomer() entities.Customer {
	return entities.Customer{Name: r.Customer.Name, Email: r.Customer.Email, Phone: r.Customer.Phone}
}

func (r ProposalCreateRequest) ToInputs() entities.ProposalInputs {
	return entities.ProposalInputs{
		Acreage:   r.Inputs.Acreage,
		Service:   entities.ServiceType(r.Inputs.Service),
		Package:   r.Inputs.Package,
		Address:   r.Inputs.Address,
		Obstacles: r.Inputs.Obstacles,
	}
}

// ToItems resolves the breakdown. A missing line total defaults to
// quantity x rate; an explicit total wins.
func (r ProposalCreateRequest) ToItems() []entities.LineItem {
	items := make([]entities.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		total := it.Total
		if total == 0 {
			total = it.Quantity * it.Rate
		}
		items = append(items, entities.LineItem{
			Name:        it.Name,
			Description: it.Description,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Total:       total,
		})
	}
	return items
}

// ProposalAcceptRequest is the customer's explicit approval action.
type ProposalAcceptRequest struct {
	Token    string `json:"token" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Consent  bool   `json:"consent"`
}

// PaymentWebhookRequest is the out-of-band payment confirmation event. It is
// the only trigger for the accepted -> paid transition.
type PaymentWebhookRequest struct {
	ProposalID       string  `json:"proposal_id" binding:"required"`
	Amount           float64 `json:"amount" binding:"required"`
	PaymentReference string  `json:"payment_reference" binding:"required"`
}
