package user_usecases

import (
	"errors"

	apperrors "certverify.io/application/appErrors"
	"certverify.io/application/constants"
	"certverify.io/application/controller/dto"
	"certverify.io/application/repository"
	"certverify.io/application/utils"
	"certverify.io/entities"
	"certverify.io/infrastructure/biometric"
	"certverify.io/infrastructure/database/repository/mongo"
	"go.mongodb.org/mongo-driver/bson"
)

type ProfileResponse struct {
	*entities.User
	EnrolledDescriptors int `json:"enrolledDescriptors"`
}

func FetchProfileUseCase(ctx any, userID string) (*ProfileResponse, error) {
	user, err := repository.UserRepo().FindByID(utils.RequestContext(ctx), userID)
	if err != nil {
		apperrors.FatalServerError(ctx, err)
		return nil, err
	}
	if user == nil {
		apperrors.NotFoundError(ctx, "user not found")
		return nil, errors.New("user not found")
	}
	return &ProfileResponse{
		User:                user,
		EnrolledDescriptors: len(biometric.ParseEnrollment(user.BiometricData).Descriptors),
	}, nil
}

func ListStudentsUseCase(ctx any, pagination *dto.PaginationDTO) (*[]entities.User, error) {
	skip, limit := pagination.Normalise()
	var sort interface{} = bson.D{{Key: "createdAt", Value: -1}}
	var projection interface{} = bson.M{"biometricData": 0, "password": 0}
	students, err := repository.UserRepo().FindMany(utils.RequestContext(ctx), map[string]interface{}{
		"role": constants.RoleStudent,
	}, &mongo.FindOptions{Sort: &sort, Skip: &skip, Limit: &limit, Projection: &projection})
	if err != nil {
		apperrors.FatalServerError(ctx, err)
		return nil, err
	}
	return students, nil
}
