package upstream

// GraphQL operation documents. The selection sets mirror the platform schema;
// list fields come back as edges/nodes connections. Counts are derived from
// edge counts, so count-only connections select just the node id.

const clientFragment = `
fragment ClientParts on Client {
  id
  user {
    id
    firstName
    lastName
    email
  }
  trainer {
    id
    user {
      id
      firstName
      lastName
      email
    }
  }
  workouts {
    edges {
      node {
        id
      }
    }
  }
  mealPlans {
    edges {
      node {
        id
      }
    }
  }
  weightTrends {
    edges {
      node {
        id
      }
    }
  }
}`

const trainerFragment = `
fragment TrainerParts on Trainer {
  id
  user {
    id
    firstName
    lastName
    email
  }
  clients {
    edges {
      node {
        ...ClientParts
      }
    }
  }
}` + clientFragment

const workoutFragment = `
fragment WorkoutParts on Workout {
  id
  name
  exercises
  completed
  client {
    id
  }
  trainer {
    id
  }
  dueDate
}`

const mealPlanFragment = `
fragment MealPlanParts on MealPlan {
  id
  name
  description
  client {
    id
  }
  trainer {
    id
  }
  meals {
    edges {
      node {
        id
        name
        calories
        carbs
        fats
        protein
      }
    }
  }
}`

// --- User queries ---

const QueryUserByEmail = `
query UserByEmail($email: String!) {
  usersList(filter: { email: { equals: $email } }, first: 1) {
    edges {
      node {
        id
        firstName
        lastName
        email
      }
    }
  }
}`

// QueryUserForLogin additionally selects the stored password for credential
// verification. Never used outside the login flow.
const QueryUserForLogin = `
query UserForLogin($email: String!) {
  usersList(filter: { email: { equals: $email } }, first: 1) {
    edges {
      node {
        id
        firstName
        lastName
        email
        password
      }
    }
  }
}`

// --- Role-record lookups by user id ---

const QueryClientByUserID = `
query ClientByUserID($userId: ID!) {
  clientsList(filter: { user: { id: { equals: $userId } } }, first: 1) {
    edges {
      node {
        ...ClientParts
      }
    }
  }
}` + clientFragment

const QueryTrainerByUserID = `
query TrainerByUserID($userId: ID!) {
  trainersList(filter: { user: { id: { equals: $userId } } }, first: 1) {
    edges {
      node {
        ...TrainerParts
      }
    }
  }
}` + trainerFragment

// --- Trainer queries/mutations ---

const QueryAllTrainers = `
query AllTrainers {
  trainersList {
    edges {
      node {
        ...TrainerParts
      }
    }
  }
}` + trainerFragment

const QueryTrainerByID = `
query TrainerByID($id: ID!) {
  trainer(id: $id) {
    ...TrainerParts
  }
}` + trainerFragment

const MutationUpdateTrainer = `
mutation UpdateTrainer($id: ID!, $firstName: String, $lastName: String, $email: String) {
  trainerUpdate(
    data: {
      id: $id
      user: { update: { firstName: $firstName, lastName: $lastName, email: $email } }
    }
  ) {
    success
    errors {
      message
    }
    trainer {
      ...TrainerParts
    }
  }
}` + trainerFragment

const MutationDeleteTrainer = `
mutation DeleteTrainer($id: ID!) {
  trainerDelete(data: { id: $id }) {
    success
    errors {
      message
    }
  }
}`

// --- Client queries/mutations ---

const QueryAllClients = `
query AllClients {
  clientsList {
    edges {
      node {
        ...ClientParts
      }
    }
  }
}` + clientFragment

const QueryClientByID = `
query ClientByID($id: ID!) {
  client(id: $id) {
    ...ClientParts
  }
}` + clientFragment

const QueryClientsByTrainer = `
query ClientsByTrainer($trainerId: ID!) {
  clientsList(filter: { trainer: { id: { equals: $trainerId } } }) {
    edges {
      node {
        ...ClientParts
      }
    }
  }
}` + clientFragment

const MutationCreateUser = `
mutation CreateUser($firstName: String!, $lastName: String!, $email: String!, $password: String!) {
  userCreate(
    data: { firstName: $firstName, lastName: $lastName, email: $email, password: $password }
  ) {
    success
    errors {
      message
    }
    user {
      id
      firstName
      lastName
      email
    }
  }
}`

const MutationDeleteUser = `
mutation DeleteUser($id: ID!) {
  userDelete(data: { id: $id }) {
    success
    errors {
      message
    }
  }
}`

const MutationCreateClient = `
mutation CreateClient($userId: ID!, $trainerId: ID) {
  clientCreate(
    data: { user: { connect: { id: $userId } }, trainer: { connect: { id: $trainerId } } }
  ) {
    success
    errors {
      message
    }
    client {
      ...ClientParts
    }
  }
}` + clientFragment

const MutationUpdateClient = `
mutation UpdateClient($id: ID!, $firstName: String, $lastName: String, $email: String) {
  clientUpdate(
    data: {
      id: $id
      user: { update: { firstName: $firstName, lastName: $lastName, email: $email } }
    }
  ) {
    success
    errors {
      message
    }
    client {
      ...ClientParts
    }
  }
}` + clientFragment

const MutationDeleteClient = `
mutation DeleteClient($id: ID!) {
  clientDelete(data: { id: $id }) {
    success
    errors {
      message
    }
  }
}`

const MutationAssignTrainer = `
mutation AssignTrainer($id: ID!, $trainerId: ID!) {
  clientUpdate(data: { id: $id, trainer: { connect: { id: $trainerId } } }) {
    success
    errors {
      message
    }
    client {
      ...ClientParts
    }
  }
}` + clientFragment

const MutationRemoveTrainer = `
mutation RemoveTrainer($id: ID!) {
  clientUpdate(data: { id: $id, trainer: { disconnect: true } }) {
    success
    errors {
      message
    }
    client {
      ...ClientParts
    }
  }
}` + clientFragment

// --- Workout queries/mutations ---

const QueryAllWorkouts = `
query AllWorkouts {
  workoutsList {
    edges {
      node {
        ...WorkoutParts
      }
    }
  }
}` + workoutFragment

const QueryWorkoutsByClient = `
query WorkoutsByClient($clientId: ID!) {
  workoutsList(filter: { client: { id: { equals: $clientId } } }) {
    edges {
      node {
        ...WorkoutParts
      }
    }
  }
}` + workoutFragment

const QueryWorkoutByID = `
query WorkoutByID($id: ID!) {
  workout(id: $id) {
    ...WorkoutParts
  }
}` + workoutFragment

const MutationCreateWorkout = `
mutation CreateWorkout($name: String!, $exercises: String!, $clientId: ID!, $trainerId: ID, $dueDate: Date) {
  workoutCreate(
    data: {
      name: $name
      exercises: $exercises
      completed: false
      client: { connect: { id: $clientId } }
      trainer: { connect: { id: $trainerId } }
      dueDate: $dueDate
    }
  ) {
    success
    errors {
      message
    }
    workout {
      ...WorkoutParts
    }
  }
}` + workoutFragment

const MutationUpdateWorkout = `
mutation UpdateWorkout($id: ID!, $name: String, $exercises: String, $completed: Boolean, $dueDate: Date) {
  workoutUpdate(
    data: { id: $id, name: $name, exercises: $exercises, completed: $completed, dueDate: $dueDate }
  ) {
    success
    errors {
      message
    }
    workout {
      ...WorkoutParts
    }
  }
}` + workoutFragment

const MutationDeleteWorkout = `
mutation DeleteWorkout($id: ID!) {
  workoutDelete(data: { id: $id }) {
    success
    errors {
      message
    }
  }
}`

// --- Meal plan queries/mutations ---

const QueryAllMealPlans = `
query AllMealPlans {
  mealPlansList {
    edges {
      node {
        ...MealPlanParts
      }
    }
  }
}` + mealPlanFragment

const QueryMealPlansByClient = `
query MealPlansByClient($clientId: ID!) {
  mealPlansList(filter: { client: { id: { equals: $clientId } } }) {
    edges {
      node {
        ...MealPlanParts
      }
    }
  }
}` + mealPlanFragment

const QueryMealPlanByID = `
query MealPlanByID($id: ID!) {
  mealPlan(id: $id) {
    ...MealPlanParts
  }
}` + mealPlanFragment

const MutationCreateMealPlan = `
mutation CreateMealPlan($name: String!, $description: String, $clientId: ID!, $trainerId: ID) {
  mealPlanCreate(
    data: {
      name: $name
      description: $description
      client: { connect: { id: $clientId } }
      trainer: { connect: { id: $trainerId } }
    }
  ) {
    success
    errors {
      message
    }
    mealPlan {
      ...MealPlanParts
    }
  }
}` + mealPlanFragment

const MutationUpdateMealPlan = `
mutation UpdateMealPlan($id: ID!, $name: String, $description: String) {
  mealPlanUpdate(data: { id: $id, name: $name, description: $description }) {
    success
    errors {
      message
    }
    mealPlan {
      ...MealPlanParts
    }
  }
}` + mealPlanFragment

const MutationDeleteMealPlan = `
mutation DeleteMealPlan($id: ID!) {
  mealPlanDelete(data: { id: $id }) {
    success
    errors {
      message
    }
  }
}`

const MutationCreateMeal = `
mutation CreateMeal($mealPlanId: ID!, $name: String!, $calories: Int, $carbs: Int, $fats: Int, $protein: Int) {
  mealCreate(
    data: {
      mealPlan: { connect: { id: $mealPlanId } }
      name: $name
      calories: $calories
      carbs: $carbs
      fats: $fats
      protein: $protein
    }
  ) {
    success
    errors {
      message
    }
    meal {
      id
      name
      calories
      carbs
      fats
      protein
    }
  }
}`
