package repository

import (
	"context"
	"time"

	"paysadmin/internal/domain/entities"
	"paysadmin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSessionsTableName = "admin_sessions"

type sessionItem struct {
	SessionKey string `dynamodbav:"session_key"`
	Token      string `dynamodbav:"token"`
	CreatedAt  string `dynamodbav:"created_at"`
	ExpiresAt  string `dynamodbav:"expires_at"`
	// TTL is the DynamoDB time-to-live attribute (epoch seconds) so stale
	// sessions age out of the table without a sweeper.
	TTL int64 `dynamodbav:"ttl"`
}

// SessionDynamoRepository persists operator sessions in DynamoDB.
//
// Table requirements:
//   - PK: session_key (string)
//   - TTL attribute: ttl
type SessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb *dynamodb.Client) *SessionDynamoRepository {
	return &SessionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SESSIONS_TABLE", defaultSessionsTableName),
	}
}

func (r *SessionDynamoRepository) Put(ctx context.Context, s entities.Session) error {
	av, err := attributevalue.MarshalMap(toSessionItem(s))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *SessionDynamoRepository) Get(ctx context.Context, key string) (entities.Session, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"session_key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Session{}, err
	}
	if len(out.Item) == 0 {
		return entities.Session{}, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Session{}, err
	}
	return fromSessionItem(it), nil
}

func (r *SessionDynamoRepository) Delete(ctx context.Context, key string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"session_key": &types.AttributeValueMemberS{Value: key},
		},
	})
	return err
}

func toSessionItem(s entities.Session) sessionItem {
	return sessionItem{
		SessionKey: s.Key,
		Token:      s.Token,
		CreatedAt:  s.CreatedAt.UTC().Format(time.RFC3339Nano),
		ExpiresAt:  s.ExpiresAt.UTC().Format(time.RFC3339Nano),
		TTL:        s.ExpiresAt.UTC().Unix(),
	}
}

func fromSessionItem(it sessionItem) entities.Session {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	expiresAt, _ := time.Parse(time.RFC3339Nano, it.ExpiresAt)
	return entities.Session{
		Key:       it.SessionKey,
		Token:     it.Token,
		CreatedAt: createdAt,
		ExpiresAt: expiresAt,
	}
}
