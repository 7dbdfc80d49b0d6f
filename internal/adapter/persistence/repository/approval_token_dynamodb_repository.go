package repository

import (
	"context"
	"errors"
	"time"

	"github.com/CVO-TreeAi/treeshop-production-sub002/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type usedTokenItem struct {
	TokenKey   string `dynamodbav:"token_key"`
	ProposalID string `dynamodbav:"proposal_id"`
	JTI        string `dynamodbav:"jti"`
	UsedAt     string `dynamodbav:"used_at"`
}

func tokenKey(proposalID, jti string) string {
	return proposalID + "#" + jti
}

// ApprovalTokenDynamoRepository tracks consumed approval tokens.
//
// Table requirements:
//   - PK: token_key (string, "proposalId#jti")
//
// Consumption is a separate fact from the token itself, so replay stays
// detectable without re-verifying the credential. The same table is written
// transactionally by ProposalDynamoRepository.AcceptWithToken.

type ApprovalTokenDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IApprovalTokenStore = (*ApprovalTokenDynamoRepository)(nil)

func NewApprovalTokenDynamoRepository(ddb *dynamodb.Client, tableName string) *ApprovalTokenDynamoRepository {
	if tableName == "" {
		tableName = defaultTokensTableName
	}
	return &ApprovalTokenDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *ApprovalTokenDynamoRepository) IsUsed(ctx context.Context, proposalID, jti string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token_key": &types.AttributeValueMemberS{Value: tokenKey(proposalID, jti)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	return len(out.Item) > 0, nil
}

// MarkUsed consumes a token with a standalone conditional insert. The accept
// path burns its token inside ProposalDynamoRepository.AcceptWithToken
// instead; this is the fallback for callers that only hold the token store.
func (r *ApprovalTokenDynamoRepository) MarkUsed(ctx context.Context, proposalID, jti string, at time.Time) error {
	av, err := attributevalue.MarshalMap(usedTokenItem{
		TokenKey:   tokenKey(proposalID, jti),
		ProposalID: proposalID,
		JTI:        jti,
		UsedAt:     formatTime(at),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#tk)"),
		ExpressionAttributeNames: map[string]string{
			"#tk": "token_key",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.ErrTokenAlreadyUsed
		}
		return err
	}
	return nil
}
