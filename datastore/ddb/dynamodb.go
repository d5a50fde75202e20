/*
 * Copyright © 2025 FireCMS Authors, All rights reserved.
 */

package ddb

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/diegotc86/firecms/errors"
)

// Attribute names of the single-table layout. The partition key holds the
// collection path, the sort key the entity id; entity values are flattened
// alongside them.
const (
	attrPath = "PK"
	attrID   = "SK"
)

// Store implements datastore.DocumentStore and datastore.Creator on top of a
// single DynamoDB table keyed by collection path and entity id.
type Store struct {
	client    *sdk.Client
	tableName string
}

// NewClient initializes a DynamoDB client using static AWS credentials.
func NewClient(awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return sdk.NewFromConfig(cfg), nil
}

// New constructs a Store backed by the given client and table.
func New(client *sdk.Client, tableName string) *Store {
	return &Store{client: client, tableName: tableName}
}

// NewWithCredentials constructs a Store, creating the client from static
// credentials.
func NewWithCredentials(awsAccessKey, awsSecretKey, awsRegion, tableName string) (*Store, error) {
	client, err := NewClient(awsAccessKey, awsSecretKey, awsRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	return New(client, tableName), nil
}

// Save persists values under path/id. An empty id gets a generated UUID,
// mirroring stores that assign identifiers server-side.
func (s *Store) Save(ctx context.Context, path, id string, values map[string]any) (string, error) {
	if id == "" {
		id = uuid.NewString()
	}

	item, err := s.marshalItem(path, id, values)
	if err != nil {
		return "", err
	}

	_, err = s.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	})
	if err != nil {
		return "", fmt.Errorf("PutItem failed: %w", err)
	}
	return id, nil
}

// Create persists values under path/id, failing when the record already
// exists.
func (s *Store) Create(ctx context.Context, path, id string, values map[string]any) (string, error) {
	if id == "" {
		id = uuid.NewString()
	}

	item, err := s.marshalItem(path, id, values)
	if err != nil {
		return "", err
	}

	_, err = s.client.PutItem(ctx, &sdk.PutItemInput{
		TableName:           &s.tableName,
		Item:                item,
		ConditionExpression: aws.String(fmt.Sprintf("attribute_not_exists(%s)", attrID)),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if stderrors.As(err, &cfe) {
			return "", errors.NewAlreadyExistsError("entity", id)
		}
		return "", fmt.Errorf("PutItem failed: %w", err)
	}
	return id, nil
}

// Delete removes the record at path/id. A missing record surfaces as a
// not-found error so repeated deletes stay observable to the caller.
func (s *Store) Delete(ctx context.Context, path, id string) error {
	_, err := s.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			attrPath: &types.AttributeValueMemberS{Value: path},
			attrID:   &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String(fmt.Sprintf("attribute_exists(%s)", attrID)),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if stderrors.As(err, &cfe) {
			return errors.NewNotFoundError("entity", id)
		}
		return fmt.Errorf("DeleteItem failed: %w", err)
	}
	return nil
}

func (s *Store) marshalItem(path, id string, values map[string]any) (map[string]types.AttributeValue, error) {
	item, err := attributevalue.MarshalMap(values)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal values: %w", err)
	}
	if item == nil {
		item = make(map[string]types.AttributeValue, 2)
	}
	item[attrPath] = &types.AttributeValueMemberS{Value: path}
	item[attrID] = &types.AttributeValueMemberS{Value: id}
	return item, nil
}
