// Package ai wraps the hosted text/JSON completion service. Callers must
// treat a failed or empty result as a normal branch: nothing in the
// pricing or order logic depends on this output.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

type Copywriter struct {
	client *openai.Client
	model  string
}

func New(apiKey string) *Copywriter {
	if apiKey == "" {
		return nil
	}
	return &Copywriter{client: openai.NewClient(apiKey), model: openai.GPT4oMini}
}

// trimFences strips the ```json fences models like to wrap payloads in.
func trimFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func (c *Copywriter) complete(ctx context.Context, system, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	resp, err := c.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.4,
		MaxTokens:   1200,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("respons kosong")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *Copywriter) completeJSON(ctx context.Context, system, prompt string, out any) error {
	content, err := c.complete(ctx, system+" Balas HANYA dengan JSON valid.", prompt)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(trimFences(content)), out); err != nil {
		return fmt.Errorf("parse respons AI: %w", err)
	}
	return nil
}

// ProductCopy is AI-drafted product page text, opaque to the core.
type ProductCopy struct {
	Description string `json:"description"`
	Material    string `json:"material"`
	Care        string `json:"care"`
	Shipping    string `json:"shipping"`
}

func (c *Copywriter) ProductCopy(ctx context.Context, name, category, material string) (*ProductCopy, error) {
	prompt := fmt.Sprintf(`Buat copy untuk produk fashion pria berikut.

Nama: %s
Kategori: %s
Bahan: %s

Format: {"description":"...","material":"...","care":"...","shipping":"..."}
Bahasa Indonesia, nada brand premium tapi hangat, masing-masing 1-3 kalimat.`, name, category, material)
	var out ProductCopy
	if err := c.completeJSON(ctx, "Kamu copywriter untuk brand fashion KZumi.", prompt, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type ShippingQuote struct {
	Courier string `json:"courier"`
	Service string `json:"service"`
	EtaDays string `json:"eta_days"`
	Cost    int64  `json:"cost"`
}

func (c *Copywriter) ShippingQuotes(ctx context.Context, destination string, weightGr int) ([]ShippingQuote, error) {
	prompt := fmt.Sprintf(`Perkirakan ongkos kirim dari Jakarta ke %s untuk paket %d gram.
Format: {"quotes":[{"courier":"JNE","service":"REG","eta_days":"2-3","cost":18000}]}
Sertakan 3-4 kurir Indonesia yang umum.`, destination, weightGr)
	var out struct {
		Quotes []ShippingQuote `json:"quotes"`
	}
	if err := c.completeJSON(ctx, "Kamu asisten logistik e-commerce Indonesia.", prompt, &out); err != nil {
		return nil, err
	}
	return out.Quotes, nil
}

type TrackingEvent struct {
	Timestamp   string `json:"timestamp"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

func (c *Copywriter) TrackingHistory(ctx context.Context, courier, trackingNumber, destination string) ([]TrackingEvent, error) {
	prompt := fmt.Sprintf(`Buat riwayat pelacakan paket yang realistis.
Kurir: %s, Resi: %s, Tujuan: %s
Format: {"events":[{"timestamp":"2024-01-02 08:15","location":"Jakarta","description":"Paket diterima di gudang"}]}
4-6 event, urut dari awal.`, courier, trackingNumber, destination)
	var out struct {
		Events []TrackingEvent `json:"events"`
	}
	if err := c.completeJSON(ctx, "Kamu sistem pelacakan paket.", prompt, &out); err != nil {
		return nil, err
	}
	return out.Events, nil
}

// ColorName translates a hex code into a display color name.
func (c *Copywriter) ColorName(ctx context.Context, hex string) (string, error) {
	var out struct {
		Name string `json:"name"`
	}
	prompt := fmt.Sprintf(`Nama warna untuk kode hex %s dalam Bahasa Indonesia. Format: {"name":"..."}`, hex)
	if err := c.completeJSON(ctx, "Kamu asisten katalog fashion.", prompt, &out); err != nil {
		return "", err
	}
	return out.Name, nil
}

type BundleSuggestion struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Pitch string `json:"pitch"`
}

func (c *Copywriter) SuggestBundle(ctx context.Context, productNames []string, totalPrice int64) (*BundleSuggestion, error) {
	prompt := fmt.Sprintf(`Usulkan nama paket bundling, harga bundel (sedikit di bawah %d), dan pitch singkat untuk produk: %s
Format: {"name":"...","price":0,"pitch":"..."}`, totalPrice, strings.Join(productNames, ", "))
	var out BundleSuggestion
	if err := c.completeJSON(ctx, "Kamu merchandiser brand fashion KZumi.", prompt, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DraftRejection writes a polite rejection note for a warranty claim.
func (c *Copywriter) DraftRejection(ctx context.Context, productName, reason string) (string, error) {
	prompt := fmt.Sprintf(`Tulis 2-3 kalimat sopan untuk menolak klaim garansi produk %s dengan alasan: %s. Format: {"text":"..."}`, productName, reason)
	var out struct {
		Text string `json:"text"`
	}
	if err := c.completeJSON(ctx, "Kamu staf customer service KZumi.", prompt, &out); err != nil {
		return "", err
	}
	return out.Text, nil
}
