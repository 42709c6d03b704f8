package article

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/R15hav/blog/internal/domain"
)

// Input 写入口形状：created_date 只接受 "YYYY-MM-DD HH:MM:SS" 字符串
type Input struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	Published   *bool  `json:"published"` // 缺省为 true
	CreatedDate string `json:"created_date" binding:"required"`
}

type View struct {
	ID          string `json:"id"`
	OwnerID     string `json:"owner_id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Published   string `json:"published"`
	CreatedDate string `json:"created_date"`
}

type Ack struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Create 校验日期后落库；日期非法不产生任何写入
func Create(store domain.ArticleRepository, caller domain.Identity, in *Input) (*View, error) {
	ts, err := parseDate(in.CreatedDate)
	if err != nil {
		return nil, domain.Invalid("invalid created_date", err)
	}
	a := &domain.Article{
		ID:          uuid.NewString(),
		OwnerID:     caller.UserID(),
		Title:       in.Title,
		Content:     in.Content,
		Published:   publishedString(in.Published),
		CreatedDate: ts,
	}
	if err := store.Create(a); err != nil {
		return nil, domain.Internal("create article failed", err)
	}
	return viewOf(a), nil
}

// List 返回全部文章，存储自然序，不做鉴权
func List(store domain.ArticleRepository) ([]View, error) {
	as, err := store.List()
	if err != nil {
		return nil, domain.Internal("list articles failed", err)
	}
	out := make([]View, 0, len(as))
	for i := range as {
		out = append(out, *viewOf(&as[i]))
	}
	return out, nil
}

// GetByID 单条返回（旧实现包了一层 list，属历史包袱，这里改为单对象）
func GetByID(store domain.ArticleRepository, id string) (*View, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.Invalid("invalid article id", err)
	}
	a, err := store.FindByID(id)
	if err != nil {
		return nil, domain.Internal("find article failed", err)
	}
	if a == nil {
		return nil, domain.NotFound("article not found")
	}
	return viewOf(a), nil
}

// Update 整体覆盖。失败判定顺序：id 非法 → 不存在 → 非属主 → 日期非法
func Update(store domain.ArticleRepository, caller domain.Identity, id string, in *Input) (*View, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.Invalid("invalid article id", err)
	}
	a, err := store.FindByID(id)
	if err != nil {
		return nil, domain.Internal("find article failed", err)
	}
	if a == nil {
		return nil, domain.NotFound("article not found")
	}
	if a.OwnerID != caller.UserID() {
		return nil, domain.Forbidden("not authorized to update this article")
	}
	ts, err := parseDate(in.CreatedDate)
	if err != nil {
		return nil, domain.Invalid("invalid created_date", err)
	}
	a.Title = in.Title
	a.Content = in.Content
	a.Published = publishedString(in.Published)
	a.CreatedDate = ts
	if err := store.Update(a); err != nil {
		return nil, domain.Internal("update article failed", err)
	}
	return viewOf(a), nil
}

// Delete 物理删除，删了就没有了
func Delete(store domain.ArticleRepository, caller domain.Identity, id string) (*Ack, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.Invalid("invalid article id", err)
	}
	a, err := store.FindByID(id)
	if err != nil {
		return nil, domain.Internal("find article failed", err)
	}
	if a == nil {
		return nil, domain.NotFound("article not found")
	}
	if a.OwnerID != caller.UserID() {
		return nil, domain.Forbidden("not authorized to delete this article")
	}
	if err := store.Delete(a.ID); err != nil {
		return nil, domain.Internal("delete article failed", err)
	}
	return &Ack{Success: true, Message: "Article deleted successfully"}, nil
}

// parseDate 固定格式、按 UTC 解析，拒绝时区/毫秒
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(domain.DateLayout, s, time.UTC)
}

func publishedString(p *bool) string {
	if p == nil {
		return "true"
	}
	return strconv.FormatBool(*p)
}

func viewOf(a *domain.Article) *View {
	return &View{
		ID:          a.ID,
		OwnerID:     a.OwnerID,
		Title:       a.Title,
		Content:     a.Content,
		Published:   a.Published,
		CreatedDate: a.CreatedDate.UTC().Format(domain.DateLayout),
	}
}
