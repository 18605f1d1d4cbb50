package service

import (
	"errors"
	"testing"

	"planner-go/internal/dto"
	"planner-go/internal/repository"

	"gorm.io/gorm"
)

func newPlannerService(db *gorm.DB) *PlannerService {
	return NewPlannerService(
		repository.NewPlannedActivityRepository(db),
		repository.NewActivityRepository(db),
	)
}

func TestCreatePlanned(t *testing.T) {
	db := newTestDB(t)
	svc := newPlannerService(db)
	user := seedUser(t, db, "alice", false)
	hiking := seedActivity(t, db, "徒步")

	pa, err := svc.CreatePlanned(user.ID, &dto.CreatePlannedActivityRequest{
		ActivityID: hiking.ID,
		Location:   "香山公园",
		StartDate:  "2026-09-01",
		EndDate:    "2026-09-03",
	})
	if err != nil {
		t.Fatalf("创建计划失败: %v", err)
	}
	if pa.OwnerID() != user.ID || pa.Location != "香山公园" {
		t.Fatalf("计划数据异常: %+v", pa)
	}
	if pa.StartDate.Format(dto.DateLayout) != "2026-09-01" {
		t.Fatalf("开始日期错误: %v", pa.StartDate)
	}
}

func TestCreatePlannedInvalidDates(t *testing.T) {
	db := newTestDB(t)
	svc := newPlannerService(db)
	user := seedUser(t, db, "alice", false)
	hiking := seedActivity(t, db, "徒步")

	// 结束早于开始
	_, err := svc.CreatePlanned(user.ID, &dto.CreatePlannedActivityRequest{
		ActivityID: hiking.ID,
		Location:   "香山公园",
		StartDate:  "2026-09-03",
		EndDate:    "2026-09-01",
	})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("倒置日期应返回 ErrInvalid, got %v", err)
	}

	// 格式错误
	_, err = svc.CreatePlanned(user.ID, &dto.CreatePlannedActivityRequest{
		ActivityID: hiking.ID,
		Location:   "香山公园",
		StartDate:  "09/01/2026",
		EndDate:    "2026-09-03",
	})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("错误日期格式应返回 ErrInvalid, got %v", err)
	}
}

func TestCreatePlannedDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := newPlannerService(db)
	user := seedUser(t, db, "alice", false)
	hiking := seedActivity(t, db, "徒步")

	req := &dto.CreatePlannedActivityRequest{
		ActivityID: hiking.ID,
		Location:   "香山公园",
		StartDate:  "2026-09-01",
		EndDate:    "2026-09-03",
	}
	if _, err := svc.CreatePlanned(user.ID, req); err != nil {
		t.Fatalf("创建计划失败: %v", err)
	}
	if _, err := svc.CreatePlanned(user.ID, req); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("相同活动与日期应返回 ErrDuplicate, got %v", err)
	}

	// 不同日期范围可重复计划同一活动
	req2 := &dto.CreatePlannedActivityRequest{
		ActivityID: hiking.ID,
		Location:   "香山公园",
		StartDate:  "2026-10-01",
		EndDate:    "2026-10-03",
	}
	if _, err := svc.CreatePlanned(user.ID, req2); err != nil {
		t.Fatalf("不同日期应允许: %v", err)
	}
}

func TestUpdatePlanned(t *testing.T) {
	db := newTestDB(t)
	svc := newPlannerService(db)
	user := seedUser(t, db, "alice", false)
	hiking := seedActivity(t, db, "徒步")

	pa, err := svc.CreatePlanned(user.ID, &dto.CreatePlannedActivityRequest{
		ActivityID: hiking.ID,
		Location:   "香山公园",
		StartDate:  "2026-09-01",
		EndDate:    "2026-09-03",
	})
	if err != nil {
		t.Fatalf("创建计划失败: %v", err)
	}

	// 部分更新：只改地点
	location := "玉渊潭公园"
	updated, err := svc.UpdatePlanned(pa.ID, &dto.UpdatePlannedActivityRequest{Location: &location})
	if err != nil {
		t.Fatalf("更新失败: %v", err)
	}
	if updated.Location != location || updated.StartDate.Format(dto.DateLayout) != "2026-09-01" {
		t.Fatalf("部分更新结果异常: %+v", updated)
	}

	// 更新后日期范围倒置应拒绝
	badEnd := "2026-08-01"
	if _, err := svc.UpdatePlanned(pa.ID, &dto.UpdatePlannedActivityRequest{EndDate: &badEnd}); !errors.Is(err, ErrInvalid) {
		t.Fatalf("倒置日期应返回 ErrInvalid, got %v", err)
	}

	// 不存在的记录
	if _, err := svc.UpdatePlanned(9999, &dto.UpdatePlannedActivityRequest{Location: &location}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("不存在的记录应返回 ErrNotFound, got %v", err)
	}
}
