package ai

import (
	"context"
	"log"
	"os"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

var client *openai.Client
var isInitialized bool

type AIError struct {
	Message string
}

func (e *AIError) Error() string {
	return e.Message
}

// InitializeAIService initializes the OpenAI client from environment
// variables. Without credentials the report endpoints fall back to raw
// metrics only.
func InitializeAIService() {
	endpoint := os.Getenv("OPENAI_ENDPOINT")
	apiKey := os.Getenv("OPENAI_API_KEY")

	if apiKey == "" {
		log.Println("AI service disabled - OpenAI credentials not provided")
		log.Println("Required: OPENAI_API_KEY (and optionally OPENAI_ENDPOINT)")
		isInitialized = false
		return
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if endpoint != "" {
		opts = append(opts, option.WithBaseURL(endpoint))
	}

	clientValue := openai.NewClient(opts...)
	client = &clientValue

	isInitialized = true
	log.Println("AI service initialized")
}

// IsEnabled returns whether the AI service is properly initialized
func IsEnabled() bool {
	return isInitialized && client != nil
}

// generateCompletion is a helper function to generate AI completions
func generateCompletion(ctx context.Context, systemMessage, userMessage string) (string, error) {
	if !IsEnabled() {
		return "", &AIError{Message: "AI service is not enabled"}
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini" // Default model
	}

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String(systemMessage),
					},
				},
			},
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(userMessage),
					},
				},
			},
		},
		MaxTokens:   openai.Int(1500),  // Limit response length
		Temperature: openai.Float(0.7), // Balanced creativity
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", &AIError{Message: "no completion returned"}
	}
	return resp.Choices[0].Message.Content, nil
}
