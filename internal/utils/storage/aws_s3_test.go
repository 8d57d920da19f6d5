package storage_test

import (
	"Go-Shopping-Inventory/internal/utils"
	"Go-Shopping-Inventory/internal/utils/storage"
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectAPI struct {
	put     *s3.PutObjectInput
	body    []byte
	deleted *s3.DeleteObjectInput
}

func (f *fakeObjectAPI) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.put = params
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.body = body
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjectAPI) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = params
	return &s3.DeleteObjectOutput{}, nil
}

func fileHeader(t *testing.T, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="photo"; filename="photo.jpg"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["photo"][0]
}

func TestUploadFile(t *testing.T) {
	api := &fakeObjectAPI{}
	store := storage.NewAwsS3WithClient(api, "pantry", "eu-west-1")

	key, err := store.UploadFile(context.Background(), "7", fileHeader(t, "image/jpeg", []byte("jpeg")), "photos/CompraComida", storage.AllowImage...)
	require.NoError(t, err)
	assert.Equal(t, "photos/CompraComida/7", key)
	assert.Equal(t, "pantry", aws.ToString(api.put.Bucket))
	assert.Equal(t, "image/jpeg", aws.ToString(api.put.ContentType))
	assert.Equal(t, []byte("jpeg"), api.body)

	link := store.GetPublicLinkKey(key)
	assert.Equal(t, "https://pantry.s3.eu-west-1.amazonaws.com/photos/CompraComida/7", link)
}

func TestUploadFileRejectsType(t *testing.T) {
	api := &fakeObjectAPI{}
	store := storage.NewAwsS3WithClient(api, "pantry", "eu-west-1")

	_, err := store.UploadFile(context.Background(), "7", fileHeader(t, "application/pdf", []byte("pdf")), "photos", storage.AllowImage...)
	assert.ErrorIs(t, err, storage.ErrFileTypeNotAllowed)
	assert.Nil(t, api.put)
}

func TestDeleteFile(t *testing.T) {
	api := &fakeObjectAPI{}
	store := storage.NewAwsS3WithClient(api, "pantry", "eu-west-1")

	require.NoError(t, store.DeleteFile(context.Background(), "photos/CompraVarios/2"))
	assert.Equal(t, "photos/CompraVarios/2", aws.ToString(api.deleted.Key))
}

func TestNewAwsS3NotConfigured(t *testing.T) {
	utils.ResetConfig()
	t.Cleanup(utils.ResetConfig)
	utils.SetConfig("AWS_S3_BUCKET", "")

	_, err := storage.NewAwsS3(context.Background())
	assert.ErrorIs(t, err, storage.ErrStorageNotConfigured)
}
