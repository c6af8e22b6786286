// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"
	"github.com/naka-gawa/github-profile/internal/domain"
)

// UserRepository defines the behavior of a gateway for fetching profile
// information from GitHub. Every operation is a single attempt; retry
// policy, if any, belongs to the caller. All failures are *domain.AppError.
type UserRepository interface {
	// FetchUser resolves one account by login.
	FetchUser(ctx context.Context, username string) (domain.User, error)
	// FetchUserRepositories lists the account's repositories.
	// An empty list is a valid success.
	FetchUserRepositories(ctx context.Context, username string) ([]domain.Repository, error)
	// SearchUsers finds accounts matching a free-text query.
	SearchUsers(ctx context.Context, query string) ([]domain.User, error)
}

// GitHubGateway is the concrete implementation of the UserRepository interface.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        *log.Logger
}

// searchUsersQuery is the GraphQL query for the user search operation.
type searchUsersQuery struct {
	Search struct {
		PageInfo struct {
			HasNextPage bool
			EndCursor   githubv4.String
		}
		Edges []struct {
			Node struct {
				Typename string `graphql:"__typename"`
				User     struct {
					DatabaseID githubv4.Int
					Login      githubv4.String
					Name       githubv4.String
					AvatarURL  githubv4.URI `graphql:"avatarUrl"`
					Bio        githubv4.String
					Location   githubv4.String
					Followers  struct {
						TotalCount githubv4.Int
					}
					Following struct {
						TotalCount githubv4.Int
					}
					Repositories struct {
						TotalCount githubv4.Int
					}
					Gists struct {
						TotalCount githubv4.Int
					}
				} `graphql:"... on User"`
			}
		}
	} `graphql:"search(query: $query, type: USER, first: 100, after: $cursor)"`
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// The token may be empty, in which case requests run unauthenticated with
// the lower anonymous rate limit.
func NewGitHubGateway(token string, logger *log.Logger) (UserRepository, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	var transport http.RoundTripper = rateLimitWaiter
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		transport = &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		}
	}
	httpClient := &http.Client{Transport: transport}
	return &GitHubGateway{
		restClient:    github.NewClient(httpClient),
		graphqlClient: githubv4.NewClient(httpClient),
		logger:        logger,
	}, nil
}

// FetchUser resolves one account via the REST API.
func (g *GitHubGateway) FetchUser(ctx context.Context, username string) (domain.User, error) {
	g.logger.Printf("Fetching user %q using REST API...", username)
	ghUser, _, err := g.restClient.Users.Get(ctx, username)
	if err != nil {
		return domain.User{}, classifyError(err)
	}
	user, appErr := mapUser(ghUser)
	if appErr != nil {
		return domain.User{}, appErr
	}
	g.logger.Printf("Completed fetching user %q.", username)
	return user, nil
}

// FetchUserRepositories lists all of the account's repositories,
// following REST pagination to the end.
func (g *GitHubGateway) FetchUserRepositories(ctx context.Context, username string) ([]domain.Repository, error) {
	g.logger.Printf("Fetching repositories for %q using REST API...", username)
	opts := &github.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: 100},
	}
	repos := []domain.Repository{}
	for {
		page, resp, err := g.restClient.Repositories.ListByUser(ctx, username, opts)
		if err != nil {
			return nil, classifyError(err)
		}
		for _, ghRepo := range page {
			repo, appErr := mapRepository(ghRepo)
			if appErr != nil {
				return nil, appErr
			}
			repos = append(repos, repo)
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
		g.logger.Println("  Fetching next page of repositories...")
	}
	g.logger.Printf("Completed fetching %d repositories for %q.", len(repos), username)
	return repos, nil
}

// SearchUsers finds accounts via the GraphQL API with cursor pagination.
func (g *GitHubGateway) SearchUsers(ctx context.Context, query string) ([]domain.User, error) {
	g.logger.Printf("Searching users for query %q using GraphQL API...", query)
	variables := map[string]interface{}{"query": githubv4.String(query), "cursor": (*githubv4.String)(nil)}
	users := []domain.User{}
	for {
		var q searchUsersQuery
		if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
			return nil, classifyError(err)
		}
		for _, edge := range q.Search.Edges {
			if edge.Node.Typename != "User" {
				continue // Organizations match USER searches too; skip them.
			}
			node := edge.Node.User
			if node.Login == "" {
				continue
			}
			user := domain.User{
				ID:          int64(node.DatabaseID),
				Login:       string(node.Login),
				Name:        optionalString(string(node.Name)),
				Bio:         optionalString(string(node.Bio)),
				Location:    optionalString(string(node.Location)),
				Followers:   int(node.Followers.TotalCount),
				Following:   int(node.Following.TotalCount),
				PublicRepos: int(node.Repositories.TotalCount),
				PublicGists: int(node.Gists.TotalCount),
			}
			if node.AvatarURL.URL != nil {
				user.AvatarURL = node.AvatarURL.URL.String()
			}
			users = append(users, user)
		}
		if !q.Search.PageInfo.HasNextPage {
			break
		}
		variables["cursor"] = githubv4.NewString(q.Search.PageInfo.EndCursor)
		g.logger.Println("  Fetching next page of user search results...")
	}
	g.logger.Printf("Completed searching users, %d results.", len(users))
	return users, nil
}

// mapUser converts a REST payload to the domain model. A payload without a
// login or with an unparsable avatar URL cannot be mapped and surfaces as
// a decoding error.
func mapUser(ghUser *github.User) (domain.User, *domain.AppError) {
	if ghUser == nil || ghUser.GetLogin() == "" {
		return domain.User{}, domain.ErrDecoding()
	}
	if avatar := ghUser.GetAvatarURL(); avatar != "" {
		if _, err := url.ParseRequestURI(avatar); err != nil {
			return domain.User{}, domain.ErrDecoding()
		}
	}
	return domain.User{
		ID:          ghUser.GetID(),
		Login:       ghUser.GetLogin(),
		Name:        ghUser.Name,
		AvatarURL:   ghUser.GetAvatarURL(),
		Bio:         ghUser.Bio,
		Location:    ghUser.Location,
		Followers:   ghUser.GetFollowers(),
		Following:   ghUser.GetFollowing(),
		PublicRepos: ghUser.GetPublicRepos(),
		PublicGists: ghUser.GetPublicGists(),
	}, nil
}

func mapRepository(ghRepo *github.Repository) (domain.Repository, *domain.AppError) {
	if ghRepo == nil || ghRepo.GetName() == "" {
		return domain.Repository{}, domain.ErrDecoding()
	}
	owner, appErr := mapUser(ghRepo.GetOwner())
	if appErr != nil {
		return domain.Repository{}, appErr
	}
	return domain.Repository{
		ID:              ghRepo.GetID(),
		Name:            ghRepo.GetName(),
		FullName:        ghRepo.GetFullName(),
		Owner:           owner,
		Private:         ghRepo.GetPrivate(),
		HTMLURL:         ghRepo.GetHTMLURL(),
		Description:     ghRepo.Description,
		Fork:            ghRepo.GetFork(),
		Language:        ghRepo.Language,
		ForksCount:      ghRepo.GetForksCount(),
		StargazersCount: ghRepo.GetStargazersCount(),
		WatchersCount:   ghRepo.GetWatchersCount(),
		DefaultBranch:   ghRepo.GetDefaultBranch(),
		CreatedAt:       ghRepo.GetCreatedAt().Time,
		UpdatedAt:       ghRepo.GetUpdatedAt().Time,
		Topics:          ghRepo.Topics,
	}, nil
}

// classifyError maps transport and API failures onto the closed taxonomy.
func classifyError(err error) *domain.AppError {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		code := ghErr.Response.StatusCode
		switch {
		case code == http.StatusNotFound:
			return domain.ErrUserNotFound()
		case code >= http.StatusInternalServerError:
			return domain.ErrServer(code)
		default:
			return domain.ErrUnexpected(fmt.Sprintf("GitHub request failed with HTTP %d.", code))
		}
	}
	if code, ok := graphqlStatusCode(err); ok {
		switch {
		case code == http.StatusNotFound:
			return domain.ErrUserNotFound()
		case code >= http.StatusInternalServerError:
			return domain.ErrServer(code)
		default:
			return domain.ErrUnexpected(fmt.Sprintf("GitHub request failed with HTTP %d.", code))
		}
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return domain.ErrNetwork()
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return domain.ErrNetwork()
	}
	return domain.ErrUnexpected(err.Error())
}

// graphqlStatusRe matches the HTTP status the GraphQL client embeds in
// its error string for non-200 responses; it exposes no structured error
// type, so the code has to be recovered from the message.
var graphqlStatusRe = regexp.MustCompile(`non-200 OK status code: (\d{3})`)

func graphqlStatusCode(err error) (int, bool) {
	m := graphqlStatusRe.FindStringSubmatch(err.Error())
	if m == nil {
		return 0, false
	}
	code, convErr := strconv.Atoi(m[1])
	if convErr != nil {
		return 0, false
	}
	return code, true
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
