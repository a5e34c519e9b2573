package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"strconv"

	"nelly_tech/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"
)

const dynamoIDAttribute = "id"

// DynamoDBStore keeps each collection in its own DynamoDB table.
//
// Table requirements:
//   - PK: id (string)
//
// Timestamps are written as RFC 3339 strings and numbers come back as float64;
// the repository codecs accept both.
type DynamoDBStore struct {
	ddb    *dynamodb.Client
	tables map[string]string
}

var _ interfaces.IDocumentStore = (*DynamoDBStore)(nil)

// NewDynamoDBStore maps collection names to table names; collections missing
// from tables use their own name.
func NewDynamoDBStore(ddb *dynamodb.Client, tables map[string]string) *DynamoDBStore {
	return &DynamoDBStore{ddb: ddb, tables: tables}
}

func (s *DynamoDBStore) table(collection string) string {
	if t, ok := s.tables[collection]; ok && t != "" {
		return t
	}
	return collection
}

// Ping checks that every configured table is reachable.
func (s *DynamoDBStore) Ping(ctx context.Context) error {
	for _, t := range s.tables {
		if _, err := s.ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(t)}); err != nil {
			return toDynamoStoreError(err)
		}
	}
	return nil
}

func (s *DynamoDBStore) CreateRecord(ctx context.Context, collection string, fields interfaces.Fields) (string, error) {
	item, err := attributevalue.MarshalMap(map[string]any(fields))
	if err != nil {
		return "", interfaces.NewStoreError(interfaces.StoreCodeUnknown, err)
	}
	if item == nil {
		item = map[string]types.AttributeValue{}
	}
	id := uuid.NewString()
	item[dynamoIDAttribute] = &types.AttributeValueMemberS{Value: id}
	item[interfaces.VersionField] = &types.AttributeValueMemberN{Value: "1"}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.table(collection)),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": dynamoIDAttribute,
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return "", interfaces.NewStoreError(interfaces.StoreCodeAlreadyExists, err)
		}
		return "", toDynamoStoreError(err)
	}
	return id, nil
}

func (s *DynamoDBStore) GetRecord(ctx context.Context, collection, id string) (interfaces.Record, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.table(collection)),
		Key:            dynamoKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return interfaces.Record{}, toDynamoStoreError(err)
	}
	if len(out.Item) == 0 {
		return interfaces.Record{}, interfaces.NewStoreError(interfaces.StoreCodeNotFound, nil)
	}
	return fromDynamoItem(out.Item)
}

func (s *DynamoDBStore) ListRecords(ctx context.Context, collection string) ([]interfaces.Record, error) {
	p := dynamodb.NewScanPaginator(s.ddb, &dynamodb.ScanInput{
		TableName: aws.String(s.table(collection)),
	})
	out := make([]interfaces.Record, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, toDynamoStoreError(err)
		}
		for _, item := range page.Items {
			rec, err := fromDynamoItem(item)
			if err != nil {
				return nil, err
			}
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *DynamoDBStore) UpdateRecord(ctx context.Context, collection, id string, fields interfaces.Fields) error {
	in, err := s.updateInput(collection, id, fields)
	if err != nil {
		return err
	}
	in.ConditionExpression = aws.String("attribute_exists(#id)")

	if _, err := s.ddb.UpdateItem(ctx, in); err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.NewStoreError(interfaces.StoreCodeNotFound, err)
		}
		return toDynamoStoreError(err)
	}
	return nil
}

func (s *DynamoDBStore) UpdateRecordIfVersion(ctx context.Context, collection, id string, expectedVersion int64, fields interfaces.Fields) error {
	in, err := s.updateInput(collection, id, fields)
	if err != nil {
		return err
	}
	cond := "attribute_exists(#id) AND #version = :expected"
	if expectedVersion == 0 {
		// Records written before versioning have no counter yet.
		cond = "attribute_exists(#id) AND (attribute_not_exists(#version) OR #version = :expected)"
	}
	in.ConditionExpression = aws.String(cond)
	in.ExpressionAttributeValues[":expected"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)}

	if _, err := s.ddb.UpdateItem(ctx, in); err != nil {
		var cfe *types.ConditionalCheckFailedException
		if !errors.As(err, &cfe) {
			return toDynamoStoreError(err)
		}
		// The condition covers both a missing record and a stale version.
		if _, getErr := s.GetRecord(ctx, collection, id); getErr != nil {
			return getErr
		}
		log.Printf("[store][dynamodb] version conflict table=%s id=%s expected=%d", s.table(collection), id, expectedVersion)
		return interfaces.NewStoreError(interfaces.StoreCodeAborted, err)
	}
	return nil
}

func (s *DynamoDBStore) updateInput(collection, id string, fields interfaces.Fields) (*dynamodb.UpdateItemInput, error) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == interfaces.VersionField || k == dynamoIDAttribute {
			continue
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)

	names := map[string]string{
		"#id":      dynamoIDAttribute,
		"#version": interfaces.VersionField,
	}
	values := map[string]types.AttributeValue{
		":one": &types.AttributeValueMemberN{Value: "1"},
	}
	expr := ""
	for i, k := range keys {
		av, err := attributevalue.Marshal(fields[k])
		if err != nil {
			return nil, interfaces.NewStoreError(interfaces.StoreCodeUnknown, err)
		}
		name, value := fmt.Sprintf("#f%d", i), fmt.Sprintf(":v%d", i)
		names[name] = k
		values[value] = av
		if expr == "" {
			expr = "SET "
		} else {
			expr += ", "
		}
		expr += name + " = " + value
	}
	expr += " ADD #version :one"

	return &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.table(collection)),
		Key:                       dynamoKey(id),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}, nil
}

func (s *DynamoDBStore) DeleteRecord(ctx context.Context, collection, id string) error {
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(s.table(collection)),
		Key:                 dynamoKey(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": dynamoIDAttribute,
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return interfaces.NewStoreError(interfaces.StoreCodeNotFound, err)
		}
		return toDynamoStoreError(err)
	}
	return nil
}

func dynamoKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		dynamoIDAttribute: &types.AttributeValueMemberS{Value: id},
	}
}

func fromDynamoItem(item map[string]types.AttributeValue) (interfaces.Record, error) {
	var fields map[string]any
	if err := attributevalue.UnmarshalMap(item, &fields); err != nil {
		return interfaces.Record{}, interfaces.NewStoreError(interfaces.StoreCodeUnknown, err)
	}
	id, _ := fields[dynamoIDAttribute].(string)
	delete(fields, dynamoIDAttribute)
	return interfaces.Record{ID: id, Fields: fields}, nil
}

func toDynamoStoreError(err error) error {
	var rnf *types.ResourceNotFoundException
	if errors.As(err, &rnf) {
		return interfaces.NewStoreError(interfaces.StoreCodeUnavailable, err)
	}
	var pte *types.ProvisionedThroughputExceededException
	if errors.As(err, &pte) {
		return interfaces.NewStoreError(interfaces.StoreCodeResourceExhausted, err)
	}
	var rle *types.RequestLimitExceeded
	if errors.As(err, &rle) {
		return interfaces.NewStoreError(interfaces.StoreCodeResourceExhausted, err)
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "AccessDeniedException":
			return interfaces.NewStoreError(interfaces.StoreCodePermissionDenied, err)
		case "UnrecognizedClientException", "InvalidSignatureException", "ExpiredTokenException":
			return interfaces.NewStoreError(interfaces.StoreCodeUnauthenticated, err)
		case "ThrottlingException":
			return interfaces.NewStoreError(interfaces.StoreCodeResourceExhausted, err)
		}
		return interfaces.NewStoreError(interfaces.StoreCodeUnknown, err)
	}
	return interfaces.NewStoreError(interfaces.StoreCodeUnavailable, err)
}
