package postgres

import (
	"condo-portal/internal/model"

	"gorm.io/gorm"
)

type NoticeRepository struct {
	DB *gorm.DB
}

// NoticeRow is a notice plus its derived like aggregate. HasLiked is only
// populated for resident-facing listings (viewer known).
type NoticeRow struct {
	model.Notice
	LikesCount int64 `json:"likes_count"`
	HasLiked   bool  `json:"has_liked"`
}

func (r *NoticeRepository) Create(n *model.Notice) error {
	return r.DB.Create(n).Error
}

// Update writes the given columns filtered by id and community. The compound
// filter is the tenant-isolation enforcement point; rows in other communities
// are unreachable even with a known id.
func (r *NoticeRepository) Update(id, communityID uint64, fields map[string]any) (int64, error) {
	tx := r.DB.Model(&model.Notice{}).
		Where("id = ? AND community_id = ?", id, communityID).
		Updates(fields)
	return tx.RowsAffected, tx.Error
}

func (r *NoticeRepository) Delete(id, communityID uint64) (int64, error) {
	tx := r.DB.Where("id = ? AND community_id = ?", id, communityID).
		Delete(&model.Notice{})
	return tx.RowsAffected, tx.Error
}

// List pages the community's notices with the like count computed per row.
// viewerID > 0 additionally computes has_liked for that viewer. category ""
// means all categories.
func (r *NoticeRepository) List(communityID uint64, category string, viewerID uint64, offset, limit int, newestFirst bool) ([]NoticeRow, int64, error) {
	q := r.DB.Model(&model.Notice{}).Where("community_id = ?", communityID)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sel := "notices.*, (SELECT COUNT(*) FROM likesnotice l WHERE l.notice_id = notices.id) AS likes_count"
	if viewerID > 0 {
		sel += ", EXISTS(SELECT 1 FROM likesnotice lv WHERE lv.notice_id = notices.id AND lv.user_id = ?) AS has_liked"
		q = q.Select(sel, viewerID)
	} else {
		q = q.Select(sel)
	}

	order := "created_at DESC, id DESC"
	if !newestFirst {
		order = "created_at ASC, id ASC"
	}

	var rows []NoticeRow
	err := q.Order(order).Offset(offset).Limit(limit).Find(&rows).Error
	return rows, total, err
}
