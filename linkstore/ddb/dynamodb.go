/*
 * Copyright © 2026 The Ripple Authors, All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"github.com/halorgium/ripple"
	"github.com/halorgium/ripple/errors"
	"github.com/halorgium/ripple/linkstore"
)

// Store implements linkstore.Store on top of a single DynamoDB table.
//
// Layout: every document lives under PK "<bucket>#<key>". The document item
// has SK "DOC" and carries the marshaled attribute bag; the links for tag t
// live in a separate item with SK "LINKS#<t>" holding an ordered list of
// "bucket/key" strings. Keeping links out of the document item means Put
// never clobbers them.
type Store struct {
	client    *sdk.Client
	tableName string
	logger    *zap.Logger
}

const (
	docSortKey     = "DOC"
	linkSortPrefix = "LINKS#"
)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for store diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.logger = l }
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

// New constructs a Store over an existing client.
func New(client *sdk.Client, tableName string, opts ...Option) *Store {
	s := &Store{
		client:    client,
		tableName: tableName,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromCredentials constructs a client and a Store in one step.
func NewFromCredentials(awsAccessKey, awsSecretKey, awsRegion, tableName string, opts ...Option) (*Store, error) {
	client, err := NewClient(awsAccessKey, awsSecretKey, awsRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	s := New(client, tableName, opts...)
	s.logger.Info("dynamodb link store initialized",
		zap.String("table", tableName),
		zap.String("region", awsRegion))
	return s, nil
}

// partitionKey renders the PK for a document ref.
func partitionKey(ref linkstore.Ref) string {
	return ref.Bucket + "#" + ref.Key
}

// linkSortKey renders the SK of the link item for a tag.
func linkSortKey(tag string) string {
	return linkSortPrefix + tag
}

func itemKey(ref linkstore.Ref, sortKey string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: partitionKey(ref)},
		"SK": &types.AttributeValueMemberS{Value: sortKey},
	}
}

// Get retrieves the attribute bag stored under ref.
func (s *Store) Get(ctx context.Context, ref linkstore.Ref) (ripple.Attributes, error) {
	out, err := s.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &s.tableName,
		Key:       itemKey(ref, docSortKey),
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, errors.NewNotFoundError(ref.Bucket, ref.Key)
	}
	return unmarshalDocument(out.Item)
}

// Put stores an attribute bag under ref, overwriting any previous document
// item. Link items are untouched.
func (s *Store) Put(ctx context.Context, ref linkstore.Ref, attrs ripple.Attributes) error {
	av, err := attributevalue.MarshalMap(map[string]any(attrs))
	if err != nil {
		return fmt.Errorf("failed to marshal attributes: %w", err)
	}
	av["PK"] = &types.AttributeValueMemberS{Value: partitionKey(ref)}
	av["SK"] = &types.AttributeValueMemberS{Value: docSortKey}

	if _, err := s.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &s.tableName,
		Item:      av,
	}); err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// Delete removes the document item and every link item under the same PK.
func (s *Store) Delete(ctx context.Context, ref linkstore.Ref) error {
	pk := partitionKey(ref)
	keyCond := "PK = :pk"
	out, err := s.client.Query(ctx, &sdk.QueryInput{
		TableName:              &s.tableName,
		KeyConditionExpression: &keyCond,
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: pk},
		},
	})
	if err != nil {
		return fmt.Errorf("Query error: %w", err)
	}
	if len(out.Items) == 0 {
		return errors.NewNotFoundError(ref.Bucket, ref.Key)
	}

	for _, item := range out.Items {
		sk, ok := item["SK"].(*types.AttributeValueMemberS)
		if !ok {
			continue
		}
		if _, err := s.client.DeleteItem(ctx, &sdk.DeleteItemInput{
			TableName: &s.tableName,
			Key:       itemKey(ref, sk.Value),
		}); err != nil {
			return fmt.Errorf("failed to delete item in DynamoDB: %w", err)
		}
	}
	return nil
}

// Walk follows the links of from that carry spec.Tag. Dangling links are
// skipped.
func (s *Store) Walk(ctx context.Context, from linkstore.Ref, spec linkstore.WalkSpec) ([]ripple.Attributes, error) {
	targets, err := s.readLinks(ctx, from, spec.Tag)
	if err != nil {
		return nil, err
	}

	results := make([]ripple.Attributes, 0, len(targets))
	for _, target := range targets {
		if spec.Bucket != "" && target.Bucket != spec.Bucket {
			continue
		}
		attrs, err := s.Get(ctx, target)
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		results = append(results, attrs)
	}

	s.logger.Debug("walked links",
		zap.String("from", from.String()),
		zap.String("tag", spec.Tag),
		zap.Int("count", len(results)))
	return results, nil
}

// UpdateLinks replaces the link item for spec.Tag with the given targets.
func (s *Store) UpdateLinks(ctx context.Context, from linkstore.Ref, spec linkstore.WalkSpec, targets []linkstore.Ref) error {
	refs := make([]string, len(targets))
	for i, t := range targets {
		refs[i] = t.String()
	}

	av, err := attributevalue.MarshalMap(map[string]any{"Targets": refs})
	if err != nil {
		return fmt.Errorf("failed to marshal link targets: %w", err)
	}
	av["PK"] = &types.AttributeValueMemberS{Value: partitionKey(from)}
	av["SK"] = &types.AttributeValueMemberS{Value: linkSortKey(spec.Tag)}

	if _, err := s.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &s.tableName,
		Item:      av,
	}); err != nil {
		return fmt.Errorf("failed to update links: %w", err)
	}
	return nil
}

// readLinks loads and parses the link item for a tag. A missing item means
// no links.
func (s *Store) readLinks(ctx context.Context, from linkstore.Ref, tag string) ([]linkstore.Ref, error) {
	out, err := s.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &s.tableName,
		Key:       itemKey(from, linkSortKey(tag)),
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, nil
	}

	var parsed struct {
		Targets []string `dynamodbav:"Targets"`
	}
	if err := attributevalue.UnmarshalMap(out.Item, &parsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal link item: %w", err)
	}
	return parseRefs(parsed.Targets)
}

func parseRefs(raw []string) ([]linkstore.Ref, error) {
	refs := make([]linkstore.Ref, 0, len(raw))
	for _, r := range raw {
		ref, err := linkstore.ParseRef(r)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// unmarshalDocument converts a document item back into an attribute bag,
// dropping the table's key attributes.
func unmarshalDocument(item map[string]types.AttributeValue) (ripple.Attributes, error) {
	var out map[string]interface{}
	if err := attributevalue.UnmarshalMap(item, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}

	attrs := make(ripple.Attributes, len(out))
	for k, v := range out {
		if k == "PK" || k == "SK" || strings.HasPrefix(k, linkSortPrefix) {
			continue
		}
		attrs[k] = v
	}
	return attrs, nil
}
