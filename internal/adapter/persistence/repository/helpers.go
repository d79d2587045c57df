package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of *dynamodb.Client used by the repositories.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// maxTransitionAttempts bounds the read, check, compare-and-set loop of a status
// transition.
const maxTransitionAttempts = 5

// ErrTransitionContention is returned when a status transition kept losing its
// compare-and-set to concurrent writers.
var ErrTransitionContention = errors.New("status transition contention")

// Fixed-width timestamps keep string comparison in condition expressions
// consistent with time ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		log.Printf("[repository][dynamo] unparsable timestamp value=%q err=%v", s, err)
		return time.Time{}
	}
	return t
}

func isConditionFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func stringKey(name, value string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		name: &types.AttributeValueMemberS{Value: value},
	}
}

// putIfAbsent writes item unless keyName is already taken.
func putIfAbsent(ctx context.Context, ddb DynamoAPI, table, keyName string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{
			"#pk": keyName,
		},
	})
	return err
}

// getItem loads one item by its string key into out. found is false when the
// key is unknown.
func getItem(ctx context.Context, ddb DynamoAPI, table, keyName, keyValue string, out any) (bool, error) {
	res, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            stringKey(keyName, keyValue),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return false, err
	}
	return true, nil
}

// queryAll follows LastEvaluatedKey until the index is exhausted.
func queryAll[T any](ctx context.Context, ddb DynamoAPI, input *dynamodb.QueryInput) ([]T, error) {
	items := []T{}
	p := dynamodb.NewQueryPaginator(ddb, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var batch []T
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}
	return items, nil
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// statusUpdate is a compare-and-set on the status attribute of one item.
type statusUpdate struct {
	table    string
	keyName  string
	keyValue string
	current  string
	next     string
	// extra SET clauses, e.g. "#pro_id = :pro_id"
	set    []string
	values map[string]types.AttributeValue
	names  map[string]string
	// extra conditions ANDed with the status check
	conditions []string
}

// apply runs the update and unmarshals the new image into out. applied is false
// when another writer changed the item first.
func (u statusUpdate) apply(ctx context.Context, ddb DynamoAPI, out any) (bool, error) {
	expr := "SET #status = :next, #updated_at = :updated_at"
	for _, s := range u.set {
		expr += ", " + s
	}
	cond := "#status = :current"
	for _, c := range u.conditions {
		cond += " AND " + c
	}
	values := map[string]types.AttributeValue{
		":next":       &types.AttributeValueMemberS{Value: u.next},
		":current":    &types.AttributeValueMemberS{Value: u.current},
		":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
	}
	for k, v := range u.values {
		values[k] = v
	}

	res, err := ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(u.table),
		Key:                 stringKey(u.keyName, u.keyValue),
		UpdateExpression:    aws.String(expr),
		ConditionExpression: aws.String(cond),
		ExpressionAttributeNames: mergeNames(u.names, map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	if err := attributevalue.UnmarshalMap(res.Attributes, out); err != nil {
		return false, err
	}
	return true, nil
}
