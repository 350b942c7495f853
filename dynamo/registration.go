package dynamo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/shivamGupta-25/Webster.Shivaji/events"
	"github.com/shivamGupta-25/Webster.Shivaji/registration"
)

var _ registration.Repository = &DB{}

type registrationDynamo struct {
	PK string
	SK string

	ID           uuid.UUID
	Version      int
	EventID      string
	Fest         string
	RegisteredAt time.Time
	Registrant   personDynamo
	Course       string
	Year         string
	Query        string
	TeamMembers  []personDynamo
}

type personDynamo struct {
	Name         string
	Email        string
	Phone        string
	RollNo       string
	College      string
	OtherCollege string
	IDFileName   string
	IDFileSize   int64
	IDFileType   string
}

const registrationEntityName = "REG"

func registrationPK(eventID string) string {
	return fmt.Sprintf("EVENT#%s", eventID)
}

// The sort key is the registrant's email, lowercased: one registration per
// (event, email), enforced by the conditional put.
func registrationSK(email string) string {
	return fmt.Sprintf("%s#%s", registrationEntityName, strings.ToLower(email))
}

func registrationToDynamo(reg registration.Registration, event events.Event) registrationDynamo {
	return registrationDynamo{
		PK:           registrationPK(reg.EventID),
		SK:           registrationSK(reg.Registrant.Email),
		ID:           reg.ID,
		Version:      reg.Version,
		EventID:      reg.EventID,
		Fest:         string(event.Fest),
		RegisteredAt: reg.RegisteredAt,
		Registrant:   personToDynamo(reg.Registrant),
		Course:       reg.Course,
		Year:         string(reg.Year),
		Query:        reg.Query,
		TeamMembers:  peopleToDynamo(reg.TeamMembers),
	}
}

func dynamoToRegistration(dynReg registrationDynamo) registration.Registration {
	return registration.Registration{
		ID:           dynReg.ID,
		Version:      dynReg.Version,
		EventID:      dynReg.EventID,
		RegisteredAt: dynReg.RegisteredAt,
		Registrant:   dynamoToPerson(dynReg.Registrant),
		Course:       dynReg.Course,
		Year:         registration.Year(dynReg.Year),
		Query:        dynReg.Query,
		TeamMembers:  dynamoToPeople(dynReg.TeamMembers),
	}
}

func personToDynamo(p registration.PersonInfo) personDynamo {
	return personDynamo{
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		RollNo:       p.RollNo,
		College:      string(p.College),
		OtherCollege: p.OtherCollege,
		IDFileName:   p.CollegeID.FileName,
		IDFileSize:   p.CollegeID.Size,
		IDFileType:   p.CollegeID.ContentType,
	}
}

func dynamoToPerson(p personDynamo) registration.PersonInfo {
	return registration.PersonInfo{
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		RollNo:       p.RollNo,
		College:      registration.College(p.College),
		OtherCollege: p.OtherCollege,
		CollegeID: registration.FileRef{
			FileName:    p.IDFileName,
			Size:        p.IDFileSize,
			ContentType: p.IDFileType,
		},
	}
}

func peopleToDynamo(people []registration.PersonInfo) []personDynamo {
	out := make([]personDynamo, 0, len(people))
	for _, p := range people {
		out = append(out, personToDynamo(p))
	}
	return out
}

func dynamoToPeople(people []personDynamo) []registration.PersonInfo {
	if len(people) == 0 {
		return nil
	}
	out := make([]registration.PersonInfo, 0, len(people))
	for _, p := range people {
		out = append(out, dynamoToPerson(p))
	}
	return out
}

func (d *DB) CreateRegistration(ctx context.Context, reg registration.Registration, event events.Event) error {
	dynamoReg := registrationToDynamo(reg, event)

	item, err := attributevalue.MarshalMap(dynamoReg)
	if err != nil {
		return registration.NewFailedToTranslateToDBModelError("Failed to translate registration to dynamo model", err)
	}

	expr := exprMustBuild(expression.NewBuilder().WithCondition(newItemConditional()))

	_, err = d.dynamoClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(d.tableName),
		Item:                      item,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var condFailedErr *types.ConditionalCheckFailedException
		if errors.As(err, &condFailedErr) {
			return registration.NewRegistrationAlreadyExistsError(
				fmt.Sprintf("Registration for event %q already exists for email %q", reg.EventID, reg.Registrant.Email), err)
		}
		return registration.NewFailedToWriteError("Failed PutItem call", err)
	}

	return nil
}

func (d *DB) GetRegistrationsForEvent(ctx context.Context, eventID string, limit int32, cursor *string) (registration.GetRegistrationsResponse, error) {
	keyCond := expression.Key("PK").Equal(expression.Value(registrationPK(eventID))).
		And(expression.Key("SK").BeginsWith(registrationEntityName))

	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		panic(fmt.Sprintf("failed to build dynamo key expression: %s", err))
	}

	var startKey map[string]types.AttributeValue
	if cursor != nil {
		startKey, err = cursorToLastEval(*cursor)
		if err != nil {
			return registration.GetRegistrationsResponse{}, registration.NewInvalidCursorError("Invalid cursor", err)
		}
	}

	result, err := d.dynamoClient.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(d.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		// Fetch 1 more than limit to check if there is another page or not
		Limit:             aws.Int32(limit + 1),
		ExclusiveStartKey: startKey,
	})
	if err != nil {
		return registration.GetRegistrationsResponse{}, registration.NewFailedToFetchError("Failed to fetch registrations from dynamo", err)
	}

	var dynamoItems []registrationDynamo
	err = attributevalue.UnmarshalListOfMaps(result.Items, &dynamoItems)
	if err != nil {
		panic(fmt.Sprintf("failed to unmarshal dynamo registrations: %s", err))
	}

	hasNextPage := len(dynamoItems) > int(limit)
	if hasNextPage {
		dynamoItems = dynamoItems[:limit]
	}

	var newCursor *string
	if hasNextPage && len(result.LastEvaluatedKey) > 0 {
		// Can't use LastEvalKey directly because we grabbed an extra item to check for next page
		lastItemGivenToUser := result.Items[len(result.Items)-2]
		lastItemKey := getKeyFromItem(result.LastEvaluatedKey, lastItemGivenToUser)
		c, err := lastEvalKeyToCursor(lastItemKey)
		if err != nil {
			panic(fmt.Sprintf("failed to make cursor from lastEvalKey: %s", err))
		}
		newCursor = &c
	}

	data := make([]registration.Registration, 0, len(dynamoItems))
	for _, item := range dynamoItems {
		data = append(data, dynamoToRegistration(item))
	}

	return registration.GetRegistrationsResponse{
		Data:        data,
		Cursor:      newCursor,
		HasNextPage: hasNextPage,
	}, nil
}
