package services

import (
	"context"

	"go.uber.org/zap"

	"gymdesk/internal/models/db_models"
	"gymdesk/internal/models/request_models"
	"gymdesk/internal/repositories"
	"gymdesk/pkg/utils"
)

type AdminServiceInterface interface {
	Login(ctx context.Context, req request_models.AdminLoginRequest) (string, error)
	AddRoom(ctx context.Context, req request_models.AddRoomRequest) (int, error)
	RemoveRoom(ctx context.Context, roomID int) error
	ListRooms(ctx context.Context) ([]db_models.Room, error)
	AddClass(ctx context.Context, req request_models.AddClassRequest) (int, error)
	RemoveClass(ctx context.Context, classID int) error
	ListClasses(ctx context.Context) ([]db_models.FitnessClass, error)
}

type AdminService struct {
	adminRepo repositories.AdminRepository
	roomRepo  repositories.RoomRepository
	classRepo repositories.ClassRepository
	log       *zap.Logger
}

func NewAdminService(
	adminRepo repositories.AdminRepository,
	roomRepo repositories.RoomRepository,
	classRepo repositories.ClassRepository,
	log *zap.Logger,
) AdminServiceInterface {
	return &AdminService{
		adminRepo: adminRepo,
		roomRepo:  roomRepo,
		classRepo: classRepo,
		log:       log,
	}
}

func (s *AdminService) Login(ctx context.Context, req request_models.AdminLoginRequest) (string, error) {
	admin, err := s.adminRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if admin == nil {
		return "", utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(admin.PasswordHash, req.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(admin.AdminID, utils.RoleAdmin)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}
	return token, nil
}

func (s *AdminService) AddRoom(ctx context.Context, req request_models.AddRoomRequest) (int, error) {
	room := &db_models.Room{RoomName: req.RoomName, Capacity: req.Capacity}
	if err := s.roomRepo.Insert(ctx, room); err != nil {
		return 0, utils.ErrDatabaseError
	}
	s.log.Info("room added", zap.Int("room_id", room.RoomID))
	return room.RoomID, nil
}

func (s *AdminService) RemoveRoom(ctx context.Context, roomID int) error {
	return s.roomRepo.Remove(ctx, roomID)
}

func (s *AdminService) ListRooms(ctx context.Context) ([]db_models.Room, error) {
	rooms, err := s.roomRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return rooms, nil
}

func (s *AdminService) AddClass(ctx context.Context, req request_models.AddClassRequest) (int, error) {
	class := &db_models.FitnessClass{Name: req.Name, Description: req.Description, Duration: req.Duration}
	if err := s.classRepo.Insert(ctx, class); err != nil {
		return 0, utils.ErrDatabaseError
	}
	s.log.Info("class added", zap.Int("class_id", class.ClassID))
	return class.ClassID, nil
}

func (s *AdminService) RemoveClass(ctx context.Context, classID int) error {
	return s.classRepo.Remove(ctx, classID)
}

func (s *AdminService) ListClasses(ctx context.Context) ([]db_models.FitnessClass, error) {
	classes, err := s.classRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return classes, nil
}
