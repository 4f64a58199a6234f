package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"swapcred/internal/domain/entities"
	"swapcred/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultExchangesTableName = "exchange_requests"
	exchangesOwnerIDIndex     = "owner_id-index"
)

type exchangeImageItem struct {
	URL        string `dynamodbav:"url"`
	ExternalID string `dynamodbav:"external_id,omitempty"`
}

type shippingDetailsItem struct {
	CarrierName    string `dynamodbav:"carrier_name"`
	TrackingNumber string `dynamodbav:"tracking_number"`
	ShippingDate   string `dynamodbav:"shipping_date"`
	Notes          string `dynamodbav:"notes,omitempty"`
}

type warehouseInfoItem struct {
	Name          string `dynamodbav:"name"`
	AddressLine1  string `dynamodbav:"address_line1"`
	AddressLine2  string `dynamodbav:"address_line2,omitempty"`
	City          string `dynamodbav:"city"`
	State         string `dynamodbav:"state,omitempty"`
	PostalCode    string `dynamodbav:"postal_code"`
	Country       string `dynamodbav:"country"`
	ContactPerson string `dynamodbav:"contact_person,omitempty"`
	ContactPhone  string `dynamodbav:"contact_phone,omitempty"`
}

type exchangeItem struct {
	ID            string               `dynamodbav:"id"`
	OwnerID       string               `dynamodbav:"owner_id"`
	Status        string               `dynamodbav:"status"`
	TransitStatus string               `dynamodbav:"transit_status,omitempty"`
	ProductName   string               `dynamodbav:"product_name"`
	Brand         string               `dynamodbav:"brand"`
	Condition     string               `dynamodbav:"condition"`
	Description   string               `dynamodbav:"description"`
	Images        []exchangeImageItem  `dynamodbav:"images"`
	Shipping      *shippingDetailsItem `dynamodbav:"shipping_details,omitempty"`
	WarehouseID   string               `dynamodbav:"warehouse_id,omitempty"`
	WarehouseInfo *warehouseInfoItem   `dynamodbav:"warehouse_info,omitempty"`
	CreditAmount  *int64               `dynamodbav:"credit_amount,omitempty"`
	AdminFeedback string               `dynamodbav:"admin_feedback,omitempty"`
	CreatedAt     string               `dynamodbav:"created_at"`
	UpdatedAt     string               `dynamodbav:"updated_at"`
}

// ExchangeDynamoRepository persists ExchangeRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_id)
//
// Every transition runs as a conditional UpdateItem whose condition restates
// the transition's precondition. The credit attribute is written at most once
// (attribute_not_exists guard), which is what makes credit assignment
// race-free. A failed condition is reported as the zero entity.
type ExchangeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IExchangeRepository = (*ExchangeDynamoRepository)(nil)

func NewExchangeDynamoRepository(ddb *dynamodb.Client) *ExchangeDynamoRepository {
	return &ExchangeDynamoRepository{
		ddb:       ddb,
		tableName: resolveTableName("EXCHANGES_TABLE", defaultExchangesTableName),
	}
}

func (r *ExchangeDynamoRepository) Create(ctx context.Context, e entities.ExchangeRequest) (entities.ExchangeRequest, error) {
	it := toExchangeItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ExchangeRequest{}, err
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
		return entities.ExchangeRequest{}, err
	}
	return e, nil
}

func (r *ExchangeDynamoRepository) GetByID(ctx context.Context, id string) (entities.ExchangeRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ExchangeRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ExchangeRequest{}, nil
	}

	var it exchangeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ExchangeRequest{}, err
	}
	return fromExchangeItem(it), nil
}

func (r *ExchangeDynamoRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]entities.ExchangeRequest, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(exchangesOwnerIDIndex),
		KeyConditionExpression: aws.String("owner_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: ownerID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalExchangeItems(out.Items)
}

func (r *ExchangeDynamoRepository) List(ctx context.Context, status entities.ExchangeStatus) ([]entities.ExchangeRequest, error) {
	in := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if status != "" {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
	}

	out, err := r.ddb.Scan(ctx, in)
	if err != nil {
		return nil, err
	}
	return unmarshalExchangeItems(out.Items)
}

func (r *ExchangeDynamoRepository) UpdateDecision(ctx context.Context, id string, decision entities.ExchangeStatus, feedback, warehouseID string, info *entities.WarehouseInfo) (entities.ExchangeRequest, error) {
	return r.update(ctx, id,
		"attribute_exists(#id) AND #status = :pending",
		func(now string) (string, map[string]types.AttributeValue, map[string]string) {
			expr := "SET #status = :status, #updated_at = :updated_at"
			vals := map[string]types.AttributeValue{
				":status":     &types.AttributeValueMemberS{Value: string(decision)},
				":pending":    &types.AttributeValueMemberS{Value: string(entities.ExchangeStatusPending)},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			}
			names := map[string]string{
				"#status":     "status",
				"#updated_at": "updated_at",
			}
			if feedback != "" {
				expr += ", #admin_feedback = :admin_feedback"
				vals[":admin_feedback"] = &types.AttributeValueMemberS{Value: feedback}
				names["#admin_feedback"] = "admin_feedback"
			}
			if info != nil {
				expr += ", #warehouse_id = :warehouse_id, #warehouse_info = :warehouse_info"
				vals[":warehouse_id"] = &types.AttributeValueMemberS{Value: warehouseID}
				vals[":warehouse_info"] = marshalWarehouseInfo(*info)
				names["#warehouse_id"] = "warehouse_id"
				names["#warehouse_info"] = "warehouse_info"
			}
			return expr, vals, names
		})
}

func (r *ExchangeDynamoRepository) SetShippingDetails(ctx context.Context, id string, d entities.ShippingDetails) (entities.ExchangeRequest, error) {
	return r.update(ctx, id,
		"attribute_exists(#id) AND #status = :approved AND attribute_not_exists(#shipping)",
		func(now string) (string, map[string]types.AttributeValue, map[string]string) {
			expr := "SET #shipping = :shipping, #transit = :transit, #updated_at = :updated_at"
			vals := map[string]types.AttributeValue{
				":approved":   &types.AttributeValueMemberS{Value: string(entities.ExchangeStatusApproved)},
				":shipping":   marshalShippingDetails(d),
				":transit":    &types.AttributeValueMemberS{Value: string(entities.TransitStatusShipped)},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			}
			names := map[string]string{
				"#status":     "status",
				"#shipping":   "shipping_details",
				"#transit":    "transit_status",
				"#updated_at": "updated_at",
			}
			return expr, vals, names
		})
}

func (r *ExchangeDynamoRepository) MarkReceived(ctx context.Context, id, note string) (entities.ExchangeRequest, error) {
	return r.update(ctx, id,
		"attribute_exists(#id) AND attribute_exists(#shipping) AND #transit <> :transit",
		func(now string) (string, map[string]types.AttributeValue, map[string]string) {
			expr := "SET #transit = :transit, #updated_at = :updated_at"
			vals := map[string]types.AttributeValue{
				":transit":    &types.AttributeValueMemberS{Value: string(entities.TransitStatusReceived)},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			}
			names := map[string]string{
				"#shipping":   "shipping_details",
				"#transit":    "transit_status",
				"#updated_at": "updated_at",
			}
			if note != "" {
				expr += ", #admin_feedback = :admin_feedback"
				vals[":admin_feedback"] = &types.AttributeValueMemberS{Value: note}
				names["#admin_feedback"] = "admin_feedback"
			}
			return expr, vals, names
		})
}

func (r *ExchangeDynamoRepository) SetCreditAmount(ctx context.Context, id string, amount int64, note string) (entities.ExchangeRequest, error) {
	return r.update(ctx, id,
		"attribute_exists(#id) AND #transit = :received AND attribute_not_exists(#credit)",
		func(now string) (string, map[string]types.AttributeValue, map[string]string) {
			expr := "SET #credit = :credit, #updated_at = :updated_at"
			vals := map[string]types.AttributeValue{
				":received":   &types.AttributeValueMemberS{Value: string(entities.TransitStatusReceived)},
				":credit":     &types.AttributeValueMemberN{Value: strconv.FormatInt(amount, 10)},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			}
			names := map[string]string{
				"#transit":    "transit_status",
				"#credit":     "credit_amount",
				"#updated_at": "updated_at",
			}
			if note != "" {
				expr += ", #admin_feedback = :admin_feedback"
				vals[":admin_feedback"] = &types.AttributeValueMemberS{Value: note}
				names["#admin_feedback"] = "admin_feedback"
			}
			return expr, vals, names
		})
}

func (r *ExchangeDynamoRepository) Complete(ctx context.Context, id, feedback string) (entities.ExchangeRequest, error) {
	return r.update(ctx, id,
		"attribute_exists(#id) AND #status = :approved AND #transit = :received AND #credit > :zero",
		func(now string) (string, map[string]types.AttributeValue, map[string]string) {
			expr := "SET #status = :completed, #updated_at = :updated_at"
			vals := map[string]types.AttributeValue{
				":approved":   &types.AttributeValueMemberS{Value: string(entities.ExchangeStatusApproved)},
				":received":   &types.AttributeValueMemberS{Value: string(entities.TransitStatusReceived)},
				":zero":       &types.AttributeValueMemberN{Value: "0"},
				":completed":  &types.AttributeValueMemberS{Value: string(entities.ExchangeStatusCompleted)},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			}
			names := map[string]string{
				"#status":     "status",
				"#transit":    "transit_status",
				"#credit":     "credit_amount",
				"#updated_at": "updated_at",
			}
			if feedback != "" {
				expr += ", #admin_feedback = :admin_feedback"
				vals[":admin_feedback"] = &types.AttributeValueMemberS{Value: feedback}
				names["#admin_feedback"] = "admin_feedback"
			}
			return expr, vals, names
		})
}

func (r *ExchangeDynamoRepository) DeleteIfPending(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.ExchangeStatusPending)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *ExchangeDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *ExchangeDynamoRepository) update(
	ctx context.Context,
	id string,
	condition string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.ExchangeRequest, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ExchangeRequest{}, nil
		}
		return entities.ExchangeRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ExchangeRequest{}, nil
	}
	var it exchangeItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ExchangeRequest{}, err
	}
	return fromExchangeItem(it), nil
}

func unmarshalExchangeItems(raw []map[string]types.AttributeValue) ([]entities.ExchangeRequest, error) {
	items := make([]entities.ExchangeRequest, 0, len(raw))
	for _, m := range raw {
		var it exchangeItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromExchangeItem(it))
	}
	return items, nil
}

func marshalShippingDetails(d entities.ShippingDetails) types.AttributeValue {
	av, err := attributevalue.Marshal(shippingDetailsItem{
		CarrierName:    d.CarrierName,
		TrackingNumber: d.TrackingNumber,
		ShippingDate:   d.ShippingDate,
		Notes:          d.Notes,
	})
	if err != nil {
		return &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{}}
	}
	return av
}

func marshalWarehouseInfo(info entities.WarehouseInfo) types.AttributeValue {
	av, err := attributevalue.Marshal(toWarehouseInfoItem(info))
	if err != nil {
		return &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{}}
	}
	return av
}

func toExchangeItem(e entities.ExchangeRequest) exchangeItem {
	images := make([]exchangeImageItem, 0, len(e.Images))
	for _, img := range e.Images {
		images = append(images, exchangeImageItem{URL: img.URL, ExternalID: img.ExternalID})
	}
	it := exchangeItem{
		ID:            e.ID,
		OwnerID:       e.OwnerID,
		Status:        string(e.Status),
		TransitStatus: string(e.TransitStatus),
		ProductName:   e.ProductName,
		Brand:         e.Brand,
		Condition:     e.Condition,
		Description:   e.Description,
		Images:        images,
		WarehouseID:   e.WarehouseID,
		CreditAmount:  e.CreditAmount,
		AdminFeedback: e.AdminFeedback,
		CreatedAt:     e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if e.Shipping != nil {
		it.Shipping = &shippingDetailsItem{
			CarrierName:    e.Shipping.CarrierName,
			TrackingNumber: e.Shipping.TrackingNumber,
			ShippingDate:   e.Shipping.ShippingDate,
			Notes:          e.Shipping.Notes,
		}
	}
	if e.WarehouseInfo != nil {
		info := toWarehouseInfoItem(*e.WarehouseInfo)
		it.WarehouseInfo = &info
	}
	return it
}

func fromExchangeItem(it exchangeItem) entities.ExchangeRequest {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	images := make([]entities.ExchangeImage, 0, len(it.Images))
	for _, img := range it.Images {
		images = append(images, entities.ExchangeImage{URL: img.URL, ExternalID: img.ExternalID})
	}
	e := entities.ExchangeRequest{
		ID:            it.ID,
		OwnerID:       it.OwnerID,
		Status:        entities.ExchangeStatus(it.Status),
		TransitStatus: entities.TransitStatus(it.TransitStatus),
		ProductName:   it.ProductName,
		Brand:         it.Brand,
		Condition:     it.Condition,
		Description:   it.Description,
		Images:        images,
		WarehouseID:   it.WarehouseID,
		CreditAmount:  it.CreditAmount,
		AdminFeedback: it.AdminFeedback,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
	if it.Shipping != nil {
		e.Shipping = &entities.ShippingDetails{
			CarrierName:    it.Shipping.CarrierName,
			TrackingNumber: it.Shipping.TrackingNumber,
			ShippingDate:   it.Shipping.ShippingDate,
			Notes:          it.Shipping.Notes,
		}
	}
	if it.WarehouseInfo != nil {
		info := fromWarehouseInfoItem(*it.WarehouseInfo)
		e.WarehouseInfo = &info
	}
	return e
}

func toWarehouseInfoItem(info entities.WarehouseInfo) warehouseInfoItem {
	return warehouseInfoItem{
		Name:          info.Name,
		AddressLine1:  info.AddressLine1,
		AddressLine2:  info.AddressLine2,
		City:          info.City,
		State:         info.State,
		PostalCode:    info.PostalCode,
		Country:       info.Country,
		ContactPerson: info.ContactPerson,
		ContactPhone:  info.ContactPhone,
	}
}

func fromWarehouseInfoItem(it warehouseInfoItem) entities.WarehouseInfo {
	return entities.WarehouseInfo{
		Name:          it.Name,
		AddressLine1:  it.AddressLine1,
		AddressLine2:  it.AddressLine2,
		City:          it.City,
		State:         it.State,
		PostalCode:    it.PostalCode,
		Country:       it.Country,
		ContactPerson: it.ContactPerson,
		ContactPhone:  it.ContactPhone,
	}
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
