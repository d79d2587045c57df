package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"marketplace_payments/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func sampleMission() entities.Mission {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return entities.Mission{
		ID:          "mis-1",
		ClientID:    "cli-1",
		Description: "Fix the sink",
		Price:       decimal.RequireFromString("50.00"),
		Status:      entities.MissionStatusProposed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestMissionDynamoRepository_GetByID(t *testing.T) {
	t.Run("missing mission", func(t *testing.T) {
		repo := NewMissionDynamoRepository(&fakeDynamo{}, "")
		m, err := repo.GetByID(context.Background(), "mis-x")
		if err != nil || m.ID != "" {
			t.Fatalf("expected zero mission, got %+v %v", m, err)
		}
	})

	t.Run("decimal price survives storage", func(t *testing.T) {
		ddb := &fakeDynamo{getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			if !aws.ToBool(in.ConsistentRead) {
				t.Fatalf("expected consistent read")
			}
			return &dynamodb.GetItemOutput{Item: marshalItem(t, toMissionItem(sampleMission()))}, nil
		}}
		repo := NewMissionDynamoRepository(ddb, "missions")

		m, err := repo.GetByID(context.Background(), "mis-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !m.Price.Equal(decimal.RequireFromString("50")) || m.Status != entities.MissionStatusProposed {
			t.Fatalf("unexpected mission: %+v", m)
		}
	})
}

func TestMissionDynamoRepository_TransitionStatus(t *testing.T) {
	t.Run("assigns professional under condition", func(t *testing.T) {
		confirmed := toMissionItem(sampleMission())
		confirmed.Status = string(entities.MissionStatusConfirmed)
		confirmed.ProID = "pro-1"
		ddb := &fakeDynamo{
			getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
				return &dynamodb.GetItemOutput{Item: marshalItem(t, toMissionItem(sampleMission()))}, nil
			},
			updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				return &dynamodb.UpdateItemOutput{Attributes: marshalItem(t, confirmed)}, nil
			},
		}
		repo := NewMissionDynamoRepository(ddb, "missions")

		m, applied, err := repo.TransitionStatus(context.Background(), "mis-1", entities.MissionStatusConfirmed, "pro-1")
		if err != nil || !applied || m.ProID != "pro-1" {
			t.Fatalf("unexpected result: %+v %t %v", m, applied, err)
		}
		in := ddb.updates[0]
		cond := aws.ToString(in.ConditionExpression)
		if !strings.Contains(cond, "#status = :current") || !strings.Contains(cond, "attribute_not_exists(#pro_id)") {
			t.Fatalf("unexpected condition: %s", cond)
		}
		if !strings.Contains(aws.ToString(in.UpdateExpression), "#pro_id = :pro_id") {
			t.Fatalf("unexpected update: %s", aws.ToString(in.UpdateExpression))
		}
	})

	t.Run("already confirmed is not rewritten", func(t *testing.T) {
		stored := toMissionItem(sampleMission())
		stored.Status = string(entities.MissionStatusConfirmed)
		stored.ProID = "pro-1"
		ddb := &fakeDynamo{getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: marshalItem(t, stored)}, nil
		}}
		repo := NewMissionDynamoRepository(ddb, "missions")

		_, applied, err := repo.TransitionStatus(context.Background(), "mis-1", entities.MissionStatusConfirmed, "pro-1")
		if err != nil || applied || len(ddb.updates) != 0 {
			t.Fatalf("expected no-op, got applied=%t err=%v updates=%d", applied, err, len(ddb.updates))
		}
	})

	t.Run("cancelled mission is left alone", func(t *testing.T) {
		stored := toMissionItem(sampleMission())
		stored.Status = string(entities.MissionStatusCancelled)
		ddb := &fakeDynamo{getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: marshalItem(t, stored)}, nil
		}}
		repo := NewMissionDynamoRepository(ddb, "missions")

		m, applied, err := repo.TransitionStatus(context.Background(), "mis-1", entities.MissionStatusConfirmed, "pro-1")
		if err != nil || applied || m.Status != entities.MissionStatusCancelled {
			t.Fatalf("unexpected result: %+v %t %v", m, applied, err)
		}
	})

	t.Run("retries after a concurrent proposal", func(t *testing.T) {
		pending := toMissionItem(sampleMission())
		pending.Status = string(entities.MissionStatusPending)
		proposed := toMissionItem(sampleMission())
		confirmed := proposed
		confirmed.Status = string(entities.MissionStatusConfirmed)
		confirmed.ProID = "pro-1"
		reads := 0
		ddb := &fakeDynamo{
			getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
				reads++
				if reads == 1 {
					return &dynamodb.GetItemOutput{Item: marshalItem(t, pending)}, nil
				}
				return &dynamodb.GetItemOutput{Item: marshalItem(t, proposed)}, nil
			},
			updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				cur := in.ExpressionAttributeValues[":current"].(*types.AttributeValueMemberS).Value
				if cur == string(entities.MissionStatusPending) {
					return nil, &types.ConditionalCheckFailedException{}
				}
				return &dynamodb.UpdateItemOutput{Attributes: marshalItem(t, confirmed)}, nil
			},
		}
		repo := NewMissionDynamoRepository(ddb, "missions")

		m, applied, err := repo.TransitionStatus(context.Background(), "mis-1", entities.MissionStatusConfirmed, "pro-1")
		if err != nil || !applied || m.Status != entities.MissionStatusConfirmed {
			t.Fatalf("unexpected result: %+v %t %v", m, applied, err)
		}
		if len(ddb.updates) != 2 {
			t.Fatalf("expected 2 updates, got %d", len(ddb.updates))
		}
	})

	t.Run("concurrent cancellation stops the retry", func(t *testing.T) {
		proposed := toMissionItem(sampleMission())
		cancelled := proposed
		cancelled.Status = string(entities.MissionStatusCancelled)
		reads := 0
		ddb := &fakeDynamo{
			getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
				reads++
				if reads == 1 {
					return &dynamodb.GetItemOutput{Item: marshalItem(t, proposed)}, nil
				}
				return &dynamodb.GetItemOutput{Item: marshalItem(t, cancelled)}, nil
			},
			updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				return nil, &types.ConditionalCheckFailedException{}
			},
		}
		repo := NewMissionDynamoRepository(ddb, "missions")

		m, applied, err := repo.TransitionStatus(context.Background(), "mis-1", entities.MissionStatusConfirmed, "pro-1")
		if err != nil || applied || m.Status != entities.MissionStatusCancelled {
			t.Fatalf("unexpected result: %+v %t %v", m, applied, err)
		}
		if len(ddb.updates) != 1 {
			t.Fatalf("expected a single update, got %d", len(ddb.updates))
		}
	})
}

func TestFromMissionItem_CorruptPrice(t *testing.T) {
	it := toMissionItem(sampleMission())
	it.Price = "fifty"
	m := fromMissionItem(it)
	if !m.Price.IsZero() || m.ID != "mis-1" {
		t.Fatalf("unexpected mission: %+v", m)
	}
}

func TestParseTime(t *testing.T) {
	if got := parseTime("not-a-time"); !got.IsZero() {
		t.Fatalf("expected zero time, got %v", got)
	}
	want := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	if got := parseTime(formatTime(want)); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
