package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/domain/entities"
	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProposalsTableName = "proposals"
	defaultTokensTableName    = "approval_tokens"
)

type proposalItem struct {
	ID            string `dynamodbav:"id"`
	CustomerName  string `dynamodbav:"customer_name"`
	CustomerEmail string `dynamodbav:"customer_email"`
	CustomerPhone string `dynamodbav:"customer_phone"`

	// Inputs and the line-item breakdown are frozen at creation; storing them
	// as JSON documents keeps the snapshot byte-stable.
	Inputs string `dynamodbav:"inputs"`
	Items  string `dynamodbav:"items"`

	Subtotal      string `dynamodbav:"subtotal"`
	Tax           string `dynamodbav:"tax"`
	Total         string `dynamodbav:"total"`
	DepositAmount string `dynamodbav:"deposit_amount"`
	Balance       string `dynamodbav:"balance"`

	Status string `dynamodbav:"status"`

	SentAt           string `dynamodbav:"sent_at,omitempty"`
	ViewedAt         string `dynamodbav:"viewed_at,omitempty"`
	AcceptedAt       string `dynamodbav:"accepted_at,omitempty"`
	AcceptedByName   string `dynamodbav:"accepted_by_name,omitempty"`
	PaidAt           string `dynamodbav:"paid_at,omitempty"`
	PaymentAmount    string `dynamodbav:"payment_amount,omitempty"`
	PaymentReference string `dynamodbav:"payment_reference,omitempty"`

	DocumentRef string `dynamodbav:"document_ref,omitempty"`
	PublicURL   string `dynamodbav:"public_url,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
	ExpiresAt string `dynamodbav:"expires_at"`
}

// ProposalDynamoRepository persists Proposal entities in DynamoDB.
//
// Table requirements:
//   - proposals: PK id (string)
//   - approval_tokens: PK token_key (string, "proposalId#jti"), shared with
//     ApprovalTokenDynamoRepository and written inside the accept transaction.
//
// Every transition is a conditional write on the current status, so the state
// machine holds even under concurrent operators.

type ProposalDynamoRepository struct {
	ddb         *dynamodb.Client
	tableName   string
	tokensTable string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb *dynamodb.Client, tableName, tokensTable string) *ProposalDynamoRepository {
	if tableName == "" {
		tableName = defaultProposalsTableName
	}
	if tokensTable == "" {
		tokensTable = defaultTokensTableName
	}
	return &ProposalDynamoRepository{
		ddb:         ddb,
		tableName:   tableName,
		tokensTable: tokensTable,
	}
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	it, err := toProposalItem(p)
	if err != nil {
		return entities.Proposal{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Proposal{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it)
}

func (r *ProposalDynamoRepository) MarkSent(ctx context.Context, id string, at time.Time) (entities.Proposal, error) {
	return r.transition(ctx, id, []entities.ProposalStatus{entities.ProposalStatusDraft},
		"SET #status = :next, #sent_at = :at, #updated_at = :at",
		map[string]string{"#sent_at": "sent_at"},
		map[string]types.AttributeValue{
			":next": &types.AttributeValueMemberS{Value: string(entities.ProposalStatusSent)},
			":at":   &types.AttributeValueMemberS{Value: formatTime(at)},
		})
}

func (r *ProposalDynamoRepository) MarkViewed(ctx context.Context, id string, at time.Time) (entities.Proposal, error) {
	return r.transition(ctx, id, []entities.ProposalStatus{entities.ProposalStatusSent},
		"SET #status = :next, #viewed_at = :at, #updated_at = :at",
		map[string]string{"#viewed_at": "viewed_at"},
		map[string]types.AttributeValue{
			":next": &types.AttributeValueMemberS{Value: string(entities.ProposalStatusViewed)},
			":at":   &types.AttributeValueMemberS{Value: formatTime(at)},
		})
}

func (r *ProposalDynamoRepository) AttachPaymentSession(ctx context.Context, id, sessionRef string, at time.Time) (entities.Proposal, error) {
	return r.transition(ctx, id, []entities.ProposalStatus{entities.ProposalStatusAccepted},
		"SET #payment_reference = :ref, #updated_at = :at",
		map[string]string{"#payment_reference": "payment_reference"},
		map[string]types.AttributeValue{
			":ref": &types.AttributeValueMemberS{Value: sessionRef},
			":at":  &types.AttributeValueMemberS{Value: formatTime(at)},
		})
}

func (r *ProposalDynamoRepository) MarkPaid(ctx context.Context, id string, at time.Time, amount float64, paymentRef string) (entities.Proposal, error) {
	return r.transition(ctx, id, []entities.ProposalStatus{entities.ProposalStatusAccepted},
		"SET #status = :next, #paid_at = :at, #payment_amount = :amount, #payment_reference = :ref, #updated_at = :at",
		map[string]string{
			"#paid_at":           "paid_at",
			"#payment_amount":    "payment_amount",
			"#payment_reference": "payment_reference",
		},
		map[string]types.AttributeValue{
			":next":   &types.AttributeValueMemberS{Value: string(entities.ProposalStatusPaid)},
			":at":     &types.AttributeValueMemberS{Value: formatTime(at)},
			":amount": &types.AttributeValueMemberS{Value: floatToString(amount)},
			":ref":    &types.AttributeValueMemberS{Value: paymentRef},
		})
}

func (r *ProposalDynamoRepository) MarkExpired(ctx context.Context, id string, at time.Time) (entities.Proposal, error) {
	return r.transition(ctx, id,
		[]entities.ProposalStatus{entities.ProposalStatusDraft, entities.ProposalStatusSent, entities.ProposalStatusViewed},
		"SET #status = :next, #updated_at = :at",
		nil,
		map[string]types.AttributeValue{
			":next": &types.AttributeValueMemberS{Value: string(entities.ProposalStatusExpired)},
			":at":   &types.AttributeValueMemberS{Value: formatTime(at)},
		})
}

func (r *ProposalDynamoRepository) Cancel(ctx context.Context, id string, at time.Time) (entities.Proposal, error) {
	return r.transition(ctx, id,
		[]entities.ProposalStatus{entities.ProposalStatusDraft, entities.ProposalStatusSent, entities.ProposalStatusViewed, entities.ProposalStatusAccepted},
		"SET #status = :next, #updated_at = :at",
		nil,
		map[string]types.AttributeValue{
			":next": &types.AttributeValueMemberS{Value: string(entities.ProposalStatusCancelled)},
			":at":   &types.AttributeValueMemberS{Value: formatTime(at)},
		})
}

// AcceptWithToken commits the accept transition and the used-token insert as
// one transaction. The used-token Put is the authoritative lock: exactly one
// request can insert (proposalId, jti), and only that request mutates status.
func (r *ProposalDynamoRepository) AcceptWithToken(ctx context.Context, id, jti, acceptedBy string, at time.Time) (entities.Proposal, error) {
	tokenItem, err := attributevalue.MarshalMap(usedTokenItem{
		TokenKey:   tokenKey(id, jti),
		ProposalID: id,
		JTI:        jti,
		UsedAt:     formatTime(at),
	})
	if err != nil {
		return entities.Proposal{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tokensTable),
					Item:                tokenItem,
					ConditionExpression: aws.String("attribute_not_exists(#tk)"),
					ExpressionAttributeNames: map[string]string{
						"#tk": "token_key",
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: id},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #status IN (:sent, :viewed)"),
					UpdateExpression:    aws.String("SET #status = :next, #accepted_at = :at, #accepted_by_name = :by, #updated_at = :at"),
					ExpressionAttributeNames: map[string]string{
						"#id":               "id",
						"#status":           "status",
						"#accepted_at":      "accepted_at",
						"#accepted_by_name": "accepted_by_name",
						"#updated_at":       "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":sent":   &types.AttributeValueMemberS{Value: string(entities.ProposalStatusSent)},
						":viewed": &types.AttributeValueMemberS{Value: string(entities.ProposalStatusViewed)},
						":next":   &types.AttributeValueMemberS{Value: string(entities.ProposalStatusAccepted)},
						":at":     &types.AttributeValueMemberS{Value: formatTime(at)},
						":by":     &types.AttributeValueMemberS{Value: acceptedBy},
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			// Item order matches TransactItems: [0] token put, [1] status CAS.
			if len(tce.CancellationReasons) > 0 && isConditionalCheckFailed(tce.CancellationReasons[0]) {
				return entities.Proposal{}, interfaces.ErrTokenAlreadyUsed
			}
			if len(tce.CancellationReasons) > 1 && isConditionalCheckFailed(tce.CancellationReasons[1]) {
				return entities.Proposal{}, interfaces.ErrStateConflict
			}
		}
		return entities.Proposal{}, err
	}

	return r.GetByID(ctx, id)
}

func isConditionalCheckFailed(reason types.CancellationReason) bool {
	return reason.Code != nil && *reason.Code == "ConditionalCheckFailed"
}

func (r *ProposalDynamoRepository) transition(
	ctx context.Context,
	id string,
	allowedFrom []entities.ProposalStatus,
	updateExpr string,
	extraNames map[string]string,
	values map[string]types.AttributeValue,
) (entities.Proposal, error) {
	cond := "attribute_exists(#id) AND #status IN ("
	for i, s := range allowedFrom {
		placeholder := ":from" + string(rune('a'+i))
		if i > 0 {
			cond += ", "
		}
		cond += placeholder
		values[placeholder] = &types.AttributeValueMemberS{Value: string(s)}
	}
	cond += ")"

	names := mergeNames(extraNames, map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	})

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Proposal{}, interfaces.ErrStateConflict
		}
		return entities.Proposal{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it)
}

func toProposalItem(p entities.Proposal) (proposalItem, error) {
	inputs, err := json.Marshal(p.Inputs)
	if err != nil {
		return proposalItem{}, err
	}
	items, err := json.Marshal(p.Items)
	if err != nil {
		return proposalItem{}, err
	}

	it := proposalItem{
		ID:            p.ID,
		CustomerName:  p.Customer.Name,
		CustomerEmail: p.Customer.Email,
		CustomerPhone: p.Customer.Phone,
		Inputs:        string(inputs),
		Items:         string(items),

		Subtotal:      floatToString(p.Totals.Subtotal),
		Tax:           floatToString(p.Totals.Tax),
		Total:         floatToString(p.Totals.Total),
		DepositAmount: floatToString(p.Totals.DepositAmount),
		Balance:       floatToString(p.Totals.Balance),

		Status: string(p.Status),

		SentAt:           formatTimePtr(p.SentAt),
		ViewedAt:         formatTimePtr(p.ViewedAt),
		AcceptedAt:       formatTimePtr(p.AcceptedAt),
		AcceptedByName:   p.AcceptedByName,
		PaidAt:           formatTimePtr(p.PaidAt),
		PaymentReference: p.PaymentReference,

		DocumentRef: p.DocumentRef,
		PublicURL:   p.PublicURL,

		CreatedAt: formatTime(p.CreatedAt),
		UpdatedAt: formatTime(p.UpdatedAt),
		ExpiresAt: formatTime(p.ExpiresAt),
	}
	if p.PaymentAmount != 0 {
		it.PaymentAmount = floatToString(p.PaymentAmount)
	}
	return it, nil
}

func fromProposalItem(it proposalItem) (entities.Proposal, error) {
	var inputs entities.ProposalInputs
	if it.Inputs != "" {
		if err := json.Unmarshal([]byte(it.Inputs), &inputs); err != nil {
			return entities.Proposal{}, err
		}
	}
	var items []entities.LineItem
	if it.Items != "" {
		if err := json.Unmarshal([]byte(it.Items), &items); err != nil {
			return entities.Proposal{}, err
		}
	}

	return entities.Proposal{
		ID: it.ID,
		Customer: entities.Customer{
			Name:  it.CustomerName,
			Email: it.CustomerEmail,
			Phone: it.CustomerPhone,
		},
		Inputs: inputs,
		Items:  items,
		Totals: entities.ProposalTotals{
			Subtotal:      stringToFloat(it.Subtotal),
			Tax:           stringToFloat(it.Tax),
			Total:         stringToFloat(it.Total),
			DepositAmount: stringToFloat(it.DepositAmount),
			Balance:       stringToFloat(it.Balance),
		},
		Status: entities.ProposalStatus(it.Status),

		SentAt:           parseTimePtr(it.SentAt),
		ViewedAt:         parseTimePtr(it.ViewedAt),
		AcceptedAt:       parseTimePtr(it.AcceptedAt),
		AcceptedByName:   it.AcceptedByName,
		PaidAt:           parseTimePtr(it.PaidAt),
		PaymentAmount:    stringToFloat(it.PaymentAmount),
		PaymentReference: it.PaymentReference,

		DocumentRef: it.DocumentRef,
		PublicURL:   it.PublicURL,

		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
		ExpiresAt: parseTime(it.ExpiresAt),
	}, nil
}
