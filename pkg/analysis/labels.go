package analysis

import (
	"BulkBlitz-Backend/internal/utils"
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

type (
	// LabelDetector returns object labels seen in an image. Labels are hints
	// for the vision prompt only.
	LabelDetector interface {
		DetectLabels(ctx context.Context, image []byte) ([]string, error)
	}

	rekognitionDetector struct {
		client *rekognition.Client
	}
)

func NewRekognitionDetector(ctx context.Context) (LabelDetector, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(utils.GetConfig("AWS_REGION")),
	}
	if key := utils.GetConfig("AWS_ACCESS_KEY"); key != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, utils.GetConfig("AWS_SECRET_KEY"), ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &rekognitionDetector{client: rekognition.NewFromConfig(cfg)}, nil
}

func (d *rekognitionDetector) DetectLabels(ctx context.Context, image []byte) ([]string, error) {
	out, err := d.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: image},
		MaxLabels:     aws.Int32(10),
		MinConfidence: aws.Float32(75),
	})
	if err != nil {
		return nil, err
	}

	var labels []string
	for _, l := range out.Labels {
		if l.Name != nil {
			labels = append(labels, *l.Name)
		}
	}
	return labels, nil
}
