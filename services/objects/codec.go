// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package objects

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/aws/smithy-go/encoding/httpbinding"
	smithyxml "github.com/aws/smithy-go/encoding/xml"

	awserrors "github.com/tombee/awsclient/pkg/errors"
	"github.com/tombee/awsclient/pkg/protocol/restjson"
	"github.com/tombee/awsclient/pkg/protocol/restxml"
	"github.com/tombee/awsclient/pkg/wire"
)

const (
	headerVersionID           = "X-Amz-Version-Id"
	headerExpectedBucketOwner = "X-Amz-Expected-Bucket-Owner"
)

func serializeOpGetObjectTagging(ctx context.Context, input *GetObjectTaggingInput, req *wire.Request) error {
	if input == nil {
		return fmt.Errorf("unexpected nil input")
	}
	return restjson.Bind(req, http.MethodGet, "/{Bucket}/{Key+}?tagging", func(enc *httpbinding.Encoder) error {
		return bindObject(enc, input.Bucket, input.Key, input.VersionId, input.ExpectedBucketOwner)
	})
}

func serializeOpPutObjectTagging(ctx context.Context, input *PutObjectTaggingInput, req *wire.Request) error {
	if input == nil {
		return fmt.Errorf("unexpected nil input")
	}
	for i, tag := range input.TagSet {
		if tag.Key == nil || len(*tag.Key) == 0 {
			return &awserrors.ValidationError{Field: fmt.Sprintf("TagSet[%d].Key", i), Message: "tag key must not be empty"}
		}
		if tag.Value == nil {
			return &awserrors.ValidationError{Field: fmt.Sprintf("TagSet[%d].Value", i), Message: "tag value is required"}
		}
	}
	err := restjson.Bind(req, http.MethodPut, "/{Bucket}/{Key+}?tagging", func(enc *httpbinding.Encoder) error {
		return bindObject(enc, input.Bucket, input.Key, input.VersionId, input.ExpectedBucketOwner)
	})
	if err != nil {
		return err
	}

	enc := smithyxml.NewEncoder(bytes.NewBuffer(nil))
	root := smithyxml.StartElement{
		Name: smithyxml.Name{Local: "Tagging"},
		Attr: []smithyxml.Attr{smithyxml.NewNamespaceAttribute("", xmlNamespace)},
	}
	serializeDocumentTagging(input.TagSet, enc.RootElement(root))
	restxml.SetPayload(req, enc)
	return nil
}

func bindObject(enc *httpbinding.Encoder, bucket, key, versionID, owner *string) error {
	if bucket == nil || len(*bucket) == 0 {
		return &awserrors.ValidationError{Field: "Bucket", Message: "input member Bucket must not be empty"}
	}
	if key == nil || len(*key) == 0 {
		return &awserrors.ValidationError{Field: "Key", Message: "input member Key must not be empty"}
	}
	if err := enc.SetURI("Bucket").String(*bucket); err != nil {
		return err
	}
	if err := enc.SetURI("Key").String(*key); err != nil {
		return err
	}
	if versionID != nil {
		enc.SetQuery("versionId").String(*versionID)
	}
	if owner != nil && len(*owner) > 0 {
		enc.SetHeader(headerExpectedBucketOwner).String(*owner)
	}
	return nil
}

func serializeDocumentTagging(tags []Tag, value smithyxml.Value) {
	defer value.Close()

	tagSet := value.MemberElement(smithyxml.StartElement{Name: smithyxml.Name{Local: "TagSet"}})
	defer tagSet.Close()

	array := tagSet.ArrayWithCustomName(smithyxml.StartElement{Name: smithyxml.Name{Local: "Tag"}})
	for i := range tags {
		serializeDocumentTag(&tags[i], array.Member())
	}
}

func serializeDocumentTag(v *Tag, value smithyxml.Value) {
	defer value.Close()

	if v.Key != nil {
		value.MemberElement(smithyxml.StartElement{Name: smithyxml.Name{Local: "Key"}}).String(*v.Key)
	}
	if v.Value != nil {
		value.MemberElement(smithyxml.StartElement{Name: smithyxml.Name{Local: "Value"}}).String(*v.Value)
	}
}

type taggingDocument struct {
	TagSet []struct {
		Key   *string `xml:"Key"`
		Value *string `xml:"Value"`
	} `xml:"TagSet>Tag"`
}

func deserializeOpGetObjectTagging(ctx context.Context, resp *wire.Response) (*GetObjectTaggingOutput, error) {
	var doc taggingDocument
	if err := restxml.Decode(resp.Body, "Tagging", &doc); err != nil {
		return nil, err
	}

	out := &GetObjectTaggingOutput{
		TagSet:    make([]Tag, 0, len(doc.TagSet)),
		VersionId: headerString(resp, headerVersionID),
	}
	for _, t := range doc.TagSet {
		out.TagSet = append(out.TagSet, Tag{Key: t.Key, Value: t.Value})
	}
	return out, nil
}

func deserializeOpPutObjectTagging(ctx context.Context, resp *wire.Response) (*PutObjectTaggingOutput, error) {
	return &PutObjectTaggingOutput{VersionId: headerString(resp, headerVersionID)}, nil
}

func headerString(resp *wire.Response, name string) *string {
	v := resp.Header.Get(name)
	if v == "" {
		return nil
	}
	return &v
}
