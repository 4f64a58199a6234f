package repository

import (
	"context"
	"errors"
	"time"

	"swapcred/internal/domain/entities"
	"swapcred/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultWarehousesTableName = "warehouses"

type warehouseItem struct {
	ID            string `dynamodbav:"id"`
	Name          string `dynamodbav:"name"`
	AddressLine1  string `dynamodbav:"address_line1"`
	AddressLine2  string `dynamodbav:"address_line2,omitempty"`
	City          string `dynamodbav:"city"`
	State         string `dynamodbav:"state,omitempty"`
	PostalCode    string `dynamodbav:"postal_code"`
	Country       string `dynamodbav:"country"`
	ContactPerson string `dynamodbav:"contact_person,omitempty"`
	ContactPhone  string `dynamodbav:"contact_phone,omitempty"`
	IsActive      bool   `dynamodbav:"is_active"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// WarehouseDynamoRepository persists Warehouse entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type WarehouseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWarehouseRepository = (*WarehouseDynamoRepository)(nil)

func NewWarehouseDynamoRepository(ddb *dynamodb.Client) *WarehouseDynamoRepository {
	return &WarehouseDynamoRepository{
		ddb:       ddb,
		tableName: resolveTableName("WAREHOUSES_TABLE", defaultWarehousesTableName),
	}
}

func (r *WarehouseDynamoRepository) Create(ctx context.Context, w entities.Warehouse) (entities.Warehouse, error) {
	av, err := attributevalue.MarshalMap(toWarehouseItem(w))
	if err != nil {
		return entities.Warehouse{}, err
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
		return entities.Warehouse{}, err
	}
	return w, nil
}

func (r *WarehouseDynamoRepository) GetByID(ctx context.Context, id string) (entities.Warehouse, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Warehouse{}, err
	}
	if len(out.Item) == 0 {
		return entities.Warehouse{}, nil
	}

	var it warehouseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Warehouse{}, err
	}
	return fromWarehouseItem(it), nil
}

func (r *WarehouseDynamoRepository) List(ctx context.Context, onlyActive bool) ([]entities.Warehouse, error) {
	in := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if onlyActive {
		in.FilterExpression = aws.String("#is_active = :true")
		in.ExpressionAttributeNames = map[string]string{"#is_active": "is_active"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		}
	}

	out, err := r.ddb.Scan(ctx, in)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Warehouse, 0, len(out.Items))
	for _, raw := range out.Items {
		var it warehouseItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromWarehouseItem(it))
	}
	return items, nil
}

func (r *WarehouseDynamoRepository) Update(ctx context.Context, w entities.Warehouse) (entities.Warehouse, error) {
	av, err := attributevalue.MarshalMap(toWarehouseItem(w))
	if err != nil {
		return entities.Warehouse{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Warehouse{}, nil
		}
		return entities.Warehouse{}, err
	}
	return w, nil
}

func (r *WarehouseDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toWarehouseItem(w entities.Warehouse) warehouseItem {
	return warehouseItem{
		ID:            w.ID,
		Name:          w.Name,
		AddressLine1:  w.AddressLine1,
		AddressLine2:  w.AddressLine2,
		City:          w.City,
		State:         w.State,
		PostalCode:    w.PostalCode,
		Country:       w.Country,
		ContactPerson: w.ContactPerson,
		ContactPhone:  w.ContactPhone,
		IsActive:      w.IsActive,
		CreatedAt:     w.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     w.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromWarehouseItem(it warehouseItem) entities.Warehouse {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Warehouse{
		ID:            it.ID,
		Name:          it.Name,
		AddressLine1:  it.AddressLine1,
		AddressLine2:  it.AddressLine2,
		City:          it.City,
		State:         it.State,
		PostalCode:    it.PostalCode,
		Country:       it.Country,
		ContactPerson: it.ContactPerson,
		ContactPhone:  it.ContactPhone,
		IsActive:      it.IsActive,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
