// Package store holds the optional output sinks: S3 for the rendered CSV
// and DynamoDB for the raw flattened records.
package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/jdray/lineup-stats/internal/lineups"
)

type DynamoDBAPI interface {
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

// PutRecords writes flattened player records: PK=MatchID (S),
// SK=Side#PlayerID (S). The field set per record is dynamic, so every
// flattened field maps to an attribute as-is.
func PutRecords(ctx context.Context, ddb DynamoDBAPI, table string, records []lineups.Record) error {
	if len(records) == 0 {
		return nil
	}
	const maxBatch = 25
	now := strconv.FormatInt(time.Now().Unix(), 10)

	for i := 0; i < len(records); i += maxBatch {
		end := i + maxBatch
		if end > len(records) {
			end = len(records)
		}

		reqs := make([]types.WriteRequest, 0, end-i)
		for _, r := range records[i:end] {
			matchID, _ := r["matchId"].(string)
			if matchID == "" {
				continue
			}
			item := make(map[string]types.AttributeValue, len(r)+3)
			for k, v := range r {
				item[k] = attrValue(v)
			}
			item["MatchID"] = &types.AttributeValueMemberS{Value: matchID} // PK
			item["SidePlayerID"] = &types.AttributeValueMemberS{
				Value: fmt.Sprintf("%v#%v", r["side"], r["playerId"]), // SK
			}
			item["UpdatedAt"] = &types.AttributeValueMemberN{Value: now}
			reqs = append(reqs, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: item},
			})
		}
		if len(reqs) == 0 {
			continue
		}
		if err := batchWriteWithRetry(ctx, ddb, table, reqs); err != nil {
			return fmt.Errorf("batch write player records: %w", err)
		}
	}
	return nil
}

func batchWriteWithRetry(ctx context.Context, ddb DynamoDBAPI, table string, reqs []types.WriteRequest) error {
	input := &dynamodb.BatchWriteItemInput{
		RequestItems: map[string][]types.WriteRequest{table: reqs},
	}
	const maxAttempts = 6
	backoff := 120 * time.Millisecond

	for attempt := 0; attempt < maxAttempts; attempt++ {
		out, err := ddb.BatchWriteItem(ctx, input)
		if err != nil {
			return err
		}
		if len(out.UnprocessedItems) == 0 {
			return nil
		}
		input.RequestItems = out.UnprocessedItems
		time.Sleep(backoff)
		if backoff < 2*time.Second {
			backoff += 120 * time.Millisecond
		}
	}
	return fmt.Errorf("unprocessed items remained after retries for table %s", table)
}

func attrValue(v any) types.AttributeValue {
	switch x := v.(type) {
	case nil:
		return &types.AttributeValueMemberNULL{Value: true}
	case string:
		return &types.AttributeValueMemberS{Value: x}
	case bool:
		return &types.AttributeValueMemberBOOL{Value: x}
	case float64:
		return &types.AttributeValueMemberN{Value: strconv.FormatFloat(x, 'f', -1, 64)}
	case int:
		return &types.AttributeValueMemberN{Value: strconv.Itoa(x)}
	case int64:
		return &types.AttributeValueMemberN{Value: strconv.FormatInt(x, 10)}
	default:
		return &types.AttributeValueMemberS{Value: fmt.Sprint(x)}
	}
}
