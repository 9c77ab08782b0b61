package record

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoStore implements Store on top of DynamoDB. The client is long-lived
// and safe for concurrent use; construct once in main and inject.
type DynamoStore struct {
	client *dynamodb.Client
}

func NewDynamoStore(client *dynamodb.Client) *DynamoStore {
	return &DynamoStore{client: client}
}

func (s *DynamoStore) PutRecord(ctx context.Context, table string, item Item) error {
	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      marshalItem(item),
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", table, err)
	}
	return nil
}

func (s *DynamoStore) UpdateRecord(ctx context.Context, table string, key Key, cmd UpdateCommand) (Item, error) {
	input := &dynamodb.UpdateItemInput{
		TableName:                 aws.String(table),
		Key:                       map[string]types.AttributeValue{key.Field: &types.AttributeValueMemberS{Value: key.Value}},
		UpdateExpression:          aws.String(cmd.Expression),
		ExpressionAttributeValues: marshalItem(Item(cmd.Values)),
		ReturnValues:              types.ReturnValueUpdatedNew,
	}
	if len(cmd.Names) > 0 {
		input.ExpressionAttributeNames = cmd.Names
	}

	out, err := s.client.UpdateItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", table, err)
	}
	return unmarshalItem(out.Attributes), nil
}

func (s *DynamoStore) GetRecord(ctx context.Context, table string, key Key) (Item, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key:       map[string]types.AttributeValue{key.Field: &types.AttributeValueMemberS{Value: key.Value}},
	})
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", table, err)
	}
	if len(out.Item) == 0 {
		return nil, ErrItemNotFound
	}
	return unmarshalItem(out.Item), nil
}

func (s *DynamoStore) Scan(ctx context.Context, table string, filter *FieldFilter) ([]Item, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(table)}
	if filter != nil {
		input.FilterExpression = aws.String("#f = :v")
		input.ExpressionAttributeNames = map[string]string{"#f": filter.Field}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: filter.Value},
		}
	}

	var items []Item
	paginator := dynamodb.NewScanPaginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		for _, raw := range page.Items {
			items = append(items, unmarshalItem(raw))
		}
	}
	return items, nil
}

func (s *DynamoStore) FindByField(ctx context.Context, table, field, value string) (Item, error) {
	items, err := s.Scan(ctx, table, &FieldFilter{Field: field, Value: value})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrItemNotFound
	}
	return items[0], nil
}

func marshalItem(item Item) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(item))
	for name, v := range item {
		out[name] = marshalValue(v)
	}
	return out
}

func marshalValue(v Value) types.AttributeValue {
	switch v := v.(type) {
	case StringValue:
		return &types.AttributeValueMemberS{Value: string(v)}
	case NumberValue:
		return &types.AttributeValueMemberN{Value: string(v)}
	case StringListValue:
		list := make([]types.AttributeValue, 0, len(v))
		for _, s := range v {
			list = append(list, &types.AttributeValueMemberS{Value: s})
		}
		return &types.AttributeValueMemberL{Value: list}
	}
	// Value is a closed set; the compiler keeps this unreachable.
	return &types.AttributeValueMemberNULL{Value: true}
}

func unmarshalItem(raw map[string]types.AttributeValue) Item {
	item := make(Item, len(raw))
	for name, av := range raw {
		if v, ok := unmarshalValue(av); ok {
			item[name] = v
		}
	}
	return item
}

func unmarshalValue(av types.AttributeValue) (Value, bool) {
	switch av := av.(type) {
	case *types.AttributeValueMemberS:
		return StringValue(av.Value), true
	case *types.AttributeValueMemberN:
		return NumberValue(av.Value), true
	case *types.AttributeValueMemberL:
		list := make([]string, 0, len(av.Value))
		for _, el := range av.Value {
			if s, ok := el.(*types.AttributeValueMemberS); ok {
				list = append(list, s.Value)
			}
		}
		return StringListValue(list), true
	}
	return nil, false
}
