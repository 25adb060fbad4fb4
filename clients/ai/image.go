package ai

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const DefaultImageModel = "gpt-image-1"

// ImageClient - клиент генерации картинок (OpenAI-совместимый endpoint)
type ImageClient struct {
	apiKey     string
	apiURL     string
	model      string
	httpClient *http.Client
}

// imageRequest - запрос к images endpoint
type imageRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size"`
	ResponseFormat string `json:"response_format"`
}

// imageResponse - ответ images endpoint
type imageResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewImageClient создаёт клиент генерации картинок
func NewImageClient(apiKey, apiURL, model string) *ImageClient {
	if model == "" {
		model = DefaultImageModel
	}
	return &ImageClient{
		apiKey: apiKey,
		apiURL: apiURL,
		model:  model,
		httpClient: &http.Client{
			Timeout: 120 * time.Second, // генерация картинки заметно дольше чата
		},
	}
}

// Generate создаёт картинку по промпту и возвращает её байты
func (c *ImageClient) Generate(prompt string) ([]byte, error) {
	req := imageRequest{
		Model:          c.model,
		Prompt:         prompt,
		N:              1,
		Size:           "512x512",
		ResponseFormat: "b64_json",
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("serialização do pedido: %w", err)
	}

	httpReq, err := http.NewRequest("POST", c.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("criação do pedido: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("chamada à API de imagens: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("leitura da resposta: %w", err)
	}

	var imgResp imageResponse
	if err := json.Unmarshal(body, &imgResp); err != nil {
		return nil, fmt.Errorf("resposta inválida da API: %w", err)
	}
	if imgResp.Error != nil {
		return nil, fmt.Errorf("erro da API de imagens: %s", imgResp.Error.Message)
	}
	if len(imgResp.Data) == 0 {
		return nil, fmt.Errorf("resposta vazia da API de imagens")
	}

	raw, err := base64.StdEncoding.DecodeString(imgResp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("decodificação da imagem: %w", err)
	}
	return raw, nil
}
