package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hirokishimizu39/ThisIsJapan/internal/model"
	"github.com/hirokishimizu39/ThisIsJapan/internal/store"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultHandle     = "defaultuser"
	defaultCredential = "password123"
)

var seedPhotos = []store.PhotoInsertRequest{
	{Title: "春の桜と富士山", Description: "山梨県からの富士山と桜の絶景", ImageURL: "https://source.unsplash.com/800x600/?cherry-blossom,mount-fuji"},
	{Title: "京都の伝統的な寺院", Description: "古都京都の美しい金閣寺", ImageURL: "https://source.unsplash.com/800x600/?kyoto,temple"},
	{Title: "秋の紅葉", Description: "日光の美しい紅葉の風景", ImageURL: "https://source.unsplash.com/800x600/?autumn,japan"},
	{Title: "東京の夜景", Description: "東京タワーからの夜景", ImageURL: "https://source.unsplash.com/800x600/?tokyo,night"},
	{Title: "日本の伝統的な庭園", Description: "風情ある日本庭園", ImageURL: "https://source.unsplash.com/800x600/?japanese,garden"},
}

var seedWords = []store.WordInsertRequest{
	{Original: "一期一会 - いちごいちえ", Translation: "Once-in-a-lifetime encounter", Description: "Treasure every encounter, as it will never recur. A concept often associated with tea ceremony."},
	{Original: "侘寂 - わびさび", Translation: "Wabi-sabi", Description: "Accepting imperfection and transience. The beauty found in simplicity and impermanence."},
	{Original: "頑張る - がんばる", Translation: "Do your best/Persevere", Description: "To work hard, to persist, to endure. A common expression of encouragement."},
	{Original: "木漏れ日 - こもれび", Translation: "Sunlight filtering through trees", Description: "The dappled light that filters through the leaves of trees."},
	{Original: "間 - ま", Translation: "Space/Interval", Description: "The concept of negative space or interval. Important in Japanese arts, music, and communication."},
}

var seedExperiences = []store.ExperienceInsertRequest{
	{Title: "茶道体験", Description: "伝統的な茶道を体験し、日本文化の奥深さを知る", ImageURL: "https://source.unsplash.com/800x600/?tea-ceremony", Location: "京都市, 京都府"},
	{Title: "着物レンタル体験", Description: "美しい着物を着て古都を散策", ImageURL: "https://source.unsplash.com/800x600/?kimono", Location: "金沢市, 石川県"},
	{Title: "温泉旅行", Description: "日本の伝統的な温泉で心と体をリラックス", ImageURL: "https://source.unsplash.com/800x600/?onsen,hotspring", Location: "箱根町, 神奈川県"},
	{Title: "寿司作り教室", Description: "プロの寿司職人から技術を学ぶ", ImageURL: "https://source.unsplash.com/800x600/?sushi,cooking", Location: "東京都"},
	{Title: "座禅体験", Description: "禅寺での座禅を通じて精神を鍛える", ImageURL: "https://source.unsplash.com/800x600/?zen,meditation", Location: "鎌倉市, 神奈川県"},
}

// Run populates empty tables with demo rows and makes sure the default
// account exists. Safe to call on every startup: the per-table emptiness
// check is the idempotency guard. Two processes racing through that check on
// first run can still double-seed; that limitation is inherited deliberately.
func Run(ctx context.Context, st store.DataStore) error {
	return st.WithinTx(ctx, func(tx store.DataStore) error {
		acct, err := ensureDefaultAccount(ctx, tx)
		if err != nil {
			return fmt.Errorf("ensure default account: %w", err)
		}

		if err := seedPhotoRows(ctx, tx, acct); err != nil {
			return fmt.Errorf("seed photos: %w", err)
		}

		if err := seedWordRows(ctx, tx, acct); err != nil {
			return fmt.Errorf("seed words: %w", err)
		}

		if err := seedExperienceRows(ctx, tx); err != nil {
			return fmt.Errorf("seed experiences: %w", err)
		}

		return nil
	})
}

func ensureDefaultAccount(ctx context.Context, st store.DataStore) (model.Account, error) {
	acct, err := st.GetAccountByHandle(ctx, defaultHandle)
	if err == nil {
		return acct, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return model.Account{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultCredential), bcrypt.DefaultCost)
	if err != nil {
		return model.Account{}, fmt.Errorf("hash default credential: %w", err)
	}

	acct, err = st.InsertAccount(ctx, store.AccountInsertRequest{
		Handle:     defaultHandle,
		Credential: string(hash),
	})
	if err != nil {
		return model.Account{}, err
	}

	slog.Info("created default account", "handle", defaultHandle)
	return acct, nil
}

func seedPhotoRows(ctx context.Context, st store.DataStore, owner model.Account) error {
	n, err := st.CountPhotos(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	for _, r := range seedPhotos {
		r.AccountID = owner.ID
		p, err := st.InsertPhoto(ctx, r)
		if err != nil {
			return err
		}

		// demo like counts proportional to the row id
		if err := st.SetPhotoLikes(ctx, p.ID, int(p.ID)); err != nil {
			return err
		}
	}

	slog.Info("seeded demo photos", "count", len(seedPhotos))
	return nil
}

func seedWordRows(ctx context.Context, st store.DataStore, owner model.Account) error {
	n, err := st.CountWords(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	for _, r := range seedWords {
		r.AccountID = owner.ID
		w, err := st.InsertWord(ctx, r)
		if err != nil {
			return err
		}

		if err := st.SetWordLikes(ctx, w.ID, int(w.ID)); err != nil {
			return err
		}
	}

	slog.Info("seeded demo words", "count", len(seedWords))
	return nil
}

func seedExperienceRows(ctx context.Context, st store.DataStore) error {
	n, err := st.CountExperiences(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	for _, r := range seedExperiences {
		if _, err := st.InsertExperience(ctx, r); err != nil {
			return err
		}
	}

	slog.Info("seeded demo experiences", "count", len(seedExperiences))
	return nil
}
