package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/dto"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/model"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/repository"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/scope"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/identity"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/redis"
)

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrClassFull       = errors.New("class is at capacity")
)

// StudentService is the students business interface.
type StudentService interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	GetByID(ctx context.Context, id string) (*dto.StudentResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, role scope.Role, userID string, params map[string]string, page int) ([]dto.StudentResponse, int64, error)
}

type studentService struct {
	repo     *repository.Repository
	idp      identity.Provider
	rdb      *redis.Client
	tokenTTL time.Duration
	pageSize int
	logger   *zap.Logger
}

// NewStudentService creates a StudentService instance.
func NewStudentService(repo *repository.Repository, idp identity.Provider, rdb *redis.Client, tokenTTL time.Duration, pageSize int, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, idp: idp, rdb: rdb, tokenTTL: tokenTTL, pageSize: pageSize, logger: logger}
}

func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	class, err := s.repo.Class.GetByID(ctx, req.ClassID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}
	enrolled, err := s.repo.Student.CountByClass(ctx, req.ClassID)
	if err != nil {
		return nil, err
	}
	if enrolled >= int64(class.Capacity) {
		return nil, ErrClassFull
	}

	user, err := s.idp.CreateUser(ctx, identity.CreateUserRequest{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.Name,
		LastName:  req.Surname,
		Role:      string(scope.RoleStudent),
	})
	if err != nil {
		if errors.Is(err, identity.ErrConflict) {
			return nil, ErrUsernameTaken
		}
		s.logger.Error("identity create failed", zap.Error(err))
		return nil, err
	}

	student := &model.Student{
		ID:        user.ID,
		Username:  req.Username,
		Name:      req.Name,
		Surname:   req.Surname,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Img:       req.Img,
		BloodType: req.BloodType,
		Sex:       req.Sex,
		Birthday:  req.Birthday,
		GradeID:   req.GradeID,
		ClassID:   req.ClassID,
		ParentID:  req.ParentID,
	}
	if err := s.repo.Student.Create(ctx, student); err != nil {
		s.logger.Error("create student failed, removing identity account",
			zap.String("id", user.ID), zap.Error(err))
		if derr := s.idp.DeleteUser(ctx, user.ID); derr != nil {
			s.logger.Error("compensating identity delete failed",
				zap.String("id", user.ID), zap.Error(derr))
		}
		return nil, err
	}
	return s.GetByID(ctx, student.ID)
}

func (s *studentService) GetByID(ctx context.Context, id string) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return toStudentResponse(student), nil
}

func (s *studentService) Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	err = s.idp.UpdateUser(ctx, id, identity.UpdateUserRequest{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.Name,
		LastName:  req.Surname,
	})
	if err != nil {
		if errors.Is(err, identity.ErrConflict) {
			return nil, ErrUsernameTaken
		}
		s.logger.Error("identity update failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	student.Username = req.Username
	student.Name = req.Name
	student.Surname = req.Surname
	student.Email = req.Email
	student.Phone = req.Phone
	student.Address = req.Address
	student.Img = req.Img
	student.BloodType = req.BloodType
	student.Sex = req.Sex
	student.Birthday = req.Birthday
	student.GradeID = req.GradeID
	student.ClassID = req.ClassID
	student.ParentID = req.ParentID
	student.Grade = nil
	student.Class = nil
	student.Parent = nil
	if err := s.repo.Student.Update(ctx, student); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *studentService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Student.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		return err
	}

	if err := s.idp.DeleteUser(ctx, id); err != nil && !errors.Is(err, identity.ErrNotFound) {
		s.logger.Error("identity delete failed", zap.String("id", id), zap.Error(err))
		return err
	}
	if err := s.repo.Student.Delete(ctx, id); err != nil {
		return err
	}
	revokeTokens(ctx, s.rdb, id, s.tokenTTL, s.logger)
	return nil
}

func (s *studentService) List(ctx context.Context, role scope.Role, userID string, params map[string]string, page int) ([]dto.StudentResponse, int64, error) {
	f, err := scope.Build(scope.EntityStudent, role, userID, params)
	if err != nil {
		return nil, 0, err
	}
	students, total, err := s.repo.Student.List(ctx, f, pageOffset(page, s.pageSize), s.pageSize)
	if err != nil {
		return nil, 0, err
	}
	out := make([]dto.StudentResponse, len(students))
	for i := range students {
		out[i] = *toStudentResponse(&students[i])
	}
	return out, total, nil
}

func toStudentResponse(st *model.Student) *dto.StudentResponse {
	resp := &dto.StudentResponse{
		ID:        st.ID,
		Username:  st.Username,
		Name:      st.Name,
		Surname:   st.Surname,
		Email:     st.Email,
		Phone:     st.Phone,
		Address:   st.Address,
		Img:       st.Img,
		BloodType: st.BloodType,
		Sex:       st.Sex,
		Birthday:  st.Birthday,
		GradeID:   st.GradeID,
		ClassID:   st.ClassID,
		ParentID:  st.ParentID,
	}
	if st.Class != nil {
		resp.Class = &dto.ClassBrief{ID: st.Class.ID, Name: st.Class.Name}
	}
	if st.Parent != nil {
		resp.Parent = toPersonBrief(st.Parent.ID, st.Parent.Name, st.Parent.Surname)
	}
	return resp
}
